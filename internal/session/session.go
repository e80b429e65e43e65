// Package session carries the authenticated caller through a request and
// tracks tokens revoked by logout.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
)

// Session is the authenticated caller of a request.
type Session struct {
	Token  string
	Claims model.TokenClaims
}

// Email returns the account email the token was issued for.
func (s *Session) Email() string {
	return s.Claims.Email
}

// ExpiresAt returns the token expiry.
func (s *Session) ExpiresAt() time.Time {
	return time.Unix(s.Claims.ExpiresAt, 0)
}

type (
	contextKey struct{}
	userKey    struct{}
)

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// WithUser returns a copy of ctx carrying the provider account resolved for
// the request.
func WithUser(ctx context.Context, u *model.ProviderUser) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the provider account stored in ctx, if any.
func UserFromContext(ctx context.Context) (*model.ProviderUser, bool) {
	u, ok := ctx.Value(userKey{}).(*model.ProviderUser)
	return u, ok && u != nil
}

// Fingerprint is the key a token is stored under in a revocation store.
// Raw tokens are never persisted.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
