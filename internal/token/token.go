// Package token mints and verifies the HS256 session tokens handed out on
// login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed token payload: the account email plus issue and
// expiry times.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies session tokens.
type Issuer interface {
	// Mint signs a token for email valid for the configured TTL.
	Mint(email string) (string, model.TokenClaims, error)

	// Verify checks the signature and expiry of raw and returns its claims.
	// Every failure is reported as model.ErrInvalidToken.
	Verify(raw string) (model.TokenClaims, error)
}

type issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customises an Issuer.
type Option func(*issuer)

// WithClock overrides the time source used for iat, exp and validation.
func WithClock(now func() time.Time) Option {
	return func(i *issuer) {
		i.now = now
	}
}

// NewIssuer creates an HS256 issuer.
func NewIssuer(secret string, ttl time.Duration, opts ...Option) Issuer {
	i := &issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *issuer) Mint(email string) (string, model.TokenClaims, error) {
	issuedAt := i.now().Truncate(time.Second)
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", model.TokenClaims{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, toModel(claims), nil
}

func (i *issuer) Verify(raw string) (model.TokenClaims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}

	if claims.Email == "" {
		return model.TokenClaims{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, errors.New("token has no email claim"))
	}

	return toModel(claims), nil
}

func toModel(c Claims) model.TokenClaims {
	out := model.TokenClaims{Email: c.Email}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Unix()
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Unix()
	}
	return out
}
