package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Credentials is the signup/login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Complete reports whether both fields are non-empty.
func (c Credentials) Complete() bool {
	return strings.TrimSpace(c.Email) != "" && c.Password != ""
}

// ProviderUser is the account record returned by the auth provider.
// Metadata fields are passed through untouched.
type ProviderUser struct {
	ID               string          `json:"id"`
	Email            string          `json:"email"`
	Role             string          `json:"role,omitempty"`
	EmailConfirmedAt *time.Time      `json:"email_confirmed_at,omitempty"`
	CreatedAt        *time.Time      `json:"created_at,omitempty"`
	LastSignInAt     *time.Time      `json:"last_sign_in_at,omitempty"`
	AppMetadata      json.RawMessage `json:"app_metadata,omitempty"`
	UserMetadata     json.RawMessage `json:"user_metadata,omitempty"`
}

// ProviderSession is the provider's own session, returned alongside the
// application token on login.
type ProviderSession struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	RefreshToken string `json:"refresh_token"`
}

// SignupResponse is returned by POST /signup.
type SignupResponse struct {
	Message string        `json:"message"`
	User    *ProviderUser `json:"user"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    *ProviderUser    `json:"user"`
	Session *ProviderSession `json:"session,omitempty"`
}

// TokenClaims is the decoded payload of an application session token.
type TokenClaims struct {
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// ProfileResponse is returned by GET /profile.
type ProfileResponse struct {
	Message string      `json:"message"`
	User    TokenClaims `json:"user"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Response messages shared by the auth flow.
const (
	MsgSignupSuccess  = "Signup successful! Please check your email to verify."
	MsgLoginSuccess   = "Login successful"
	MsgProfileGranted = "Profile access granted"
	MsgLogoutSuccess  = "Logged out"
)
