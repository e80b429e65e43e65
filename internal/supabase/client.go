// Package supabase is a minimal client for the Supabase GoTrue auth API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/rs/zerolog"
)

// AuthClient is the subset of the GoTrue API the portal relies on.
type AuthClient interface {
	// SignUp registers a new account. The provider sends the verification
	// email; the returned user is unconfirmed until the link is followed.
	SignUp(ctx context.Context, email, password string) (*model.ProviderUser, error)

	// SignInWithPassword exchanges credentials for a provider session.
	SignInWithPassword(ctx context.Context, email, password string) (*model.ProviderUser, *model.ProviderSession, error)

	// GetUser resolves the account owning a provider access token.
	GetUser(ctx context.Context, accessToken string) (*model.ProviderUser, error)
}

// Error is a rejection reported by the provider. Message is the provider's
// own text and is surfaced to callers verbatim.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// AsError returns the provider rejection carried by err, if any.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a GoTrue client for the project at baseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) AuthClient {
	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("client", "supabase").Logger(),
	}
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupResponse covers both shapes GoTrue returns: the bare user when email
// confirmation is pending, or a session with a nested user when the project
// auto-confirms.
type signupResponse struct {
	model.ProviderUser
	User *model.ProviderUser `json:"user"`
}

type tokenResponse struct {
	model.ProviderSession
	User *model.ProviderUser `json:"user"`
}

func (c *client) SignUp(ctx context.Context, email, password string) (*model.ProviderUser, error) {
	var resp signupResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", credentialsBody{email, password}, &resp); err != nil {
		return nil, err
	}

	if resp.User != nil {
		return resp.User, nil
	}
	user := resp.ProviderUser
	return &user, nil
}

func (c *client) SignInWithPassword(ctx context.Context, email, password string) (*model.ProviderUser, *model.ProviderSession, error) {
	var resp tokenResponse
	path := "/auth/v1/token?grant_type=password"
	if err := c.do(ctx, http.MethodPost, path, "", credentialsBody{email, password}, &resp); err != nil {
		return nil, nil, err
	}

	session := resp.ProviderSession
	return resp.User, &session, nil
}

func (c *client) GetUser(ctx context.Context, accessToken string) (*model.ProviderUser, error) {
	var user model.ProviderUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) do(ctx context.Context, method, path, bearer string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("auth provider request failed")
		return fmt.Errorf("failed to call auth provider: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read auth provider response: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("auth provider call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseError(resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode auth provider response: %w", err)
	}
	return nil
}

type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
	ErrorCode        string `json:"error_code"`
}

// parseError extracts the human-readable message from any of the error
// shapes GoTrue has used across versions.
func parseError(status int, payload []byte) *Error {
	perr := &Error{Status: status}

	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil {
		perr.Code = body.ErrorCode
		if perr.Code == "" {
			perr.Code = body.Error
		}
		for _, msg := range []string{body.Msg, body.ErrorDescription, body.Message, body.Error} {
			if msg != "" {
				perr.Message = msg
				break
			}
		}
	}

	if perr.Message == "" {
		perr.Message = strings.TrimSpace(string(payload))
	}
	if perr.Message == "" {
		perr.Message = http.StatusText(status)
	}
	return perr
}
