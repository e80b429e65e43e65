package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/session"
	"github.com/tanishkajain081/dabite-restaurant/internal/supabase"
	"github.com/tanishkajain081/dabite-restaurant/internal/token"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	provider supabase.AuthClient
	issuer   token.Issuer
	revoked  session.RevocationStore
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	provider supabase.AuthClient,
	issuer token.Issuer,
	revoked session.RevocationStore,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		provider: provider,
		issuer:   issuer,
		revoked:  revoked,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Signup registers an account. Incomplete credentials never reach the
// provider.
func (s *authService) Signup(ctx context.Context, creds model.Credentials) (*model.SignupResponse, error) {
	if !creds.Complete() {
		return nil, model.ErrCredentialsRequired
	}

	user, err := s.provider.SignUp(ctx, creds.Email, creds.Password)
	if err != nil {
		if _, ok := supabase.AsError(err); ok {
			s.logger.Info().Err(err).Msg("signup rejected by provider")
			return nil, err
		}
		s.logger.Error().Err(err).Msg("signup failed")
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("account registered")

	return &model.SignupResponse{
		Message: model.MsgSignupSuccess,
		User:    user,
	}, nil
}

// Login authenticates with the provider and mints a token for the submitted
// email.
func (s *authService) Login(ctx context.Context, creds model.Credentials) (*model.LoginResponse, error) {
	if !creds.Complete() {
		return nil, model.ErrCredentialsRequired
	}

	user, providerSession, err := s.provider.SignInWithPassword(ctx, creds.Email, creds.Password)
	if err != nil {
		if _, ok := supabase.AsError(err); ok {
			s.logger.Info().Err(err).Msg("login rejected by provider")
			return nil, err
		}
		s.logger.Error().Err(err).Msg("login failed")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	signed, _, err := s.issuer.Mint(creds.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to mint session token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &model.LoginResponse{
		Message: model.MsgLoginSuccess,
		Token:   signed,
		User:    user,
		Session: providerSession,
	}, nil
}

// Authenticate verifies rawToken and checks it has not been logged out.
func (s *authService) Authenticate(ctx context.Context, rawToken string) (*session.Session, error) {
	if rawToken == "" {
		return nil, model.ErrNoToken
	}

	claims, err := s.issuer.Verify(rawToken)
	if err != nil {
		s.logger.Debug().Err(err).Msg("token rejected")
		return nil, model.ErrInvalidToken
	}

	revoked, err := s.revoked.IsRevoked(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		s.logger.Debug().Str("email", claims.Email).Msg("revoked token presented")
		return nil, model.ErrInvalidToken
	}

	return &session.Session{Token: rawToken, Claims: claims}, nil
}

// Logout revokes the session token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return model.ErrNoToken
	}

	if err := s.revoked.Revoke(ctx, sess.Token, sess.ExpiresAt()); err != nil {
		s.logger.Error().Err(err).Msg("failed to revoke token")
		return fmt.Errorf("failed to log out: %w", err)
	}

	s.logger.Info().Str("email", sess.Email()).Msg("session revoked")
	return nil
}

// CurrentUser resolves the provider account. Any provider rejection means
// the partner is not logged in with the provider.
func (s *authService) CurrentUser(ctx context.Context, providerToken string) (*model.ProviderUser, error) {
	providerToken = strings.TrimSpace(providerToken)
	if providerToken == "" {
		return nil, model.ErrNotLoggedIn
	}

	user, err := s.provider.GetUser(ctx, providerToken)
	if err != nil {
		var perr *supabase.Error
		if errors.As(err, &perr) {
			s.logger.Debug().Int("status", perr.Status).Msg("provider rejected access token")
			return nil, model.ErrNotLoggedIn
		}
		s.logger.Error().Err(err).Msg("failed to resolve provider user")
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	if user == nil || user.ID == "" {
		return nil, model.ErrNotLoggedIn
	}

	return user, nil
}
