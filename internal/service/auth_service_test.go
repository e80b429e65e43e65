package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/session"
	"github.com/tanishkajain081/dabite-restaurant/internal/supabase"
	"github.com/tanishkajain081/dabite-restaurant/internal/token"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "service-test-secret"

func newAuthService(provider *MockAuthClient, now time.Time) (AuthService, session.RevocationStore) {
	store := session.NewMemoryStore()
	issuer := token.NewIssuer(testSecret, time.Hour, token.WithClock(func() time.Time { return now }))
	return NewAuthService(provider, issuer, store, zerolog.Nop()), store
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	user := &model.ProviderUser{ID: "6f1c", Email: "owner@dabite.in"}

	tests := []struct {
		name          string
		creds         model.Credentials
		setupMock     func(*MockAuthClient)
		expectedErr   error
		expectedMsg   string
		providerCalls int
	}{
		{
			name:  "Success",
			creds: model.Credentials{Email: "owner@dabite.in", Password: "secret123"},
			setupMock: func(m *MockAuthClient) {
				m.On("SignUp", ctx, "owner@dabite.in", "secret123").Return(user, nil)
			},
			providerCalls: 1,
		},
		{
			name:          "Empty email",
			creds:         model.Credentials{Password: "secret123"},
			setupMock:     func(m *MockAuthClient) {},
			expectedErr:   model.ErrCredentialsRequired,
			expectedMsg:   "Email and password required",
			providerCalls: 0,
		},
		{
			name:          "Empty password",
			creds:         model.Credentials{Email: "owner@dabite.in"},
			setupMock:     func(m *MockAuthClient) {},
			expectedErr:   model.ErrCredentialsRequired,
			expectedMsg:   "Email and password required",
			providerCalls: 0,
		},
		{
			name:  "Provider rejection is passed through",
			creds: model.Credentials{Email: "owner@dabite.in", Password: "x"},
			setupMock: func(m *MockAuthClient) {
				m.On("SignUp", ctx, "owner@dabite.in", "x").
					Return(nil, &supabase.Error{Status: 422, Message: "Password should be at least 6 characters."})
			},
			expectedMsg:   "Password should be at least 6 characters.",
			providerCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockAuthClient)
			tt.setupMock(provider)
			svc, _ := newAuthService(provider, time.Now())

			resp, err := svc.Signup(ctx, tt.creds)

			if tt.expectedMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedMsg, err.Error())
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Signup successful! Please check your email to verify.", resp.Message)
				assert.Same(t, user, resp.User)
			}

			provider.AssertNumberOfCalls(t, "SignUp", tt.providerCalls)
			provider.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Success mints a one hour token for the submitted email", func(t *testing.T) {
		provider := new(MockAuthClient)
		user := &model.ProviderUser{ID: "6f1c", Email: "owner@dabite.in"}
		providerSession := &model.ProviderSession{AccessToken: "provider-at", RefreshToken: "provider-rt"}
		provider.On("SignInWithPassword", ctx, "Owner@Dabite.in", "secret123").Return(user, providerSession, nil)

		svc, _ := newAuthService(provider, now)

		resp, err := svc.Login(ctx, model.Credentials{Email: "Owner@Dabite.in", Password: "secret123"})
		require.NoError(t, err)

		assert.Equal(t, "Login successful", resp.Message)
		assert.Same(t, user, resp.User)
		assert.Same(t, providerSession, resp.Session)

		claims, err := token.NewIssuer(testSecret, time.Hour, token.WithClock(func() time.Time { return now })).Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "Owner@Dabite.in", claims.Email)
		assert.Equal(t, now.Unix(), claims.IssuedAt)
		assert.Equal(t, claims.IssuedAt+3600, claims.ExpiresAt)
	})

	t.Run("Incomplete credentials issue no provider call", func(t *testing.T) {
		provider := new(MockAuthClient)
		svc, _ := newAuthService(provider, now)

		resp, err := svc.Login(ctx, model.Credentials{Email: "", Password: ""})

		assert.ErrorIs(t, err, model.ErrCredentialsRequired)
		assert.Nil(t, resp)
		provider.AssertNotCalled(t, "SignInWithPassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unverified account gets provider message", func(t *testing.T) {
		provider := new(MockAuthClient)
		provider.On("SignInWithPassword", ctx, "owner@dabite.in", "secret123").
			Return(nil, nil, &supabase.Error{Status: 400, Code: "email_not_confirmed", Message: "Email not confirmed"})
		svc, _ := newAuthService(provider, now)

		resp, err := svc.Login(ctx, model.Credentials{Email: "owner@dabite.in", Password: "secret123"})

		require.Error(t, err)
		assert.Equal(t, "Email not confirmed", err.Error())
		_, ok := supabase.AsError(err)
		assert.True(t, ok)
		assert.Nil(t, resp)
	})

	t.Run("Transport failure is wrapped", func(t *testing.T) {
		provider := new(MockAuthClient)
		provider.On("SignInWithPassword", ctx, "owner@dabite.in", "secret123").
			Return(nil, nil, errors.New("dial tcp: connection refused"))
		svc, _ := newAuthService(provider, now)

		_, err := svc.Login(ctx, model.Credentials{Email: "owner@dabite.in", Password: "secret123"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to log in")
		_, ok := supabase.AsError(err)
		assert.False(t, ok)
	})
}

func TestAuthService_AuthenticateAndLogout(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	provider := new(MockAuthClient)
	svc, _ := newAuthService(provider, now)

	issuer := token.NewIssuer(testSecret, time.Hour, token.WithClock(func() time.Time { return now }))
	raw, _, err := issuer.Mint("owner@dabite.in")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, model.ErrNoToken)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	sess, err := svc.Authenticate(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, "owner@dabite.in", sess.Email())
	assert.Equal(t, raw, sess.Token)

	require.NoError(t, svc.Logout(ctx, sess))

	_, err = svc.Authenticate(ctx, raw)
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	assert.ErrorIs(t, svc.Logout(ctx, nil), model.ErrNoToken)
}

type failingStore struct{}

func (failingStore) Revoke(context.Context, string, time.Time) error {
	return errors.New("redis: connection refused")
}

func (failingStore) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func TestAuthService_RevocationStoreDown(t *testing.T) {
	ctx := context.Background()
	issuer := token.NewIssuer(testSecret, time.Hour)
	svc := NewAuthService(new(MockAuthClient), issuer, failingStore{}, zerolog.Nop())

	raw, _, err := issuer.Mint("owner@dabite.in")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, raw)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidToken)

	err = svc.Logout(ctx, &session.Session{Token: raw, Claims: model.TokenClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()}})
	assert.Error(t, err)
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()
	user := &model.ProviderUser{ID: "6f1c", Email: "owner@dabite.in"}

	tests := []struct {
		name        string
		token       string
		setupMock   func(*MockAuthClient)
		expectedErr error
	}{
		{
			name:  "Resolved",
			token: "provider-at",
			setupMock: func(m *MockAuthClient) {
				m.On("GetUser", ctx, "provider-at").Return(user, nil)
			},
		},
		{
			name:        "No token",
			token:       "  ",
			setupMock:   func(m *MockAuthClient) {},
			expectedErr: model.ErrNotLoggedIn,
		},
		{
			name:  "Provider rejects token",
			token: "stale",
			setupMock: func(m *MockAuthClient) {
				m.On("GetUser", ctx, "stale").Return(nil, &supabase.Error{Status: 401, Message: "invalid JWT"})
			},
			expectedErr: model.ErrNotLoggedIn,
		},
		{
			name:  "Provider returns empty user",
			token: "odd",
			setupMock: func(m *MockAuthClient) {
				m.On("GetUser", ctx, "odd").Return(&model.ProviderUser{}, nil)
			},
			expectedErr: model.ErrNotLoggedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockAuthClient)
			tt.setupMock(provider)
			svc, _ := newAuthService(provider, time.Now())

			got, err := svc.CurrentUser(ctx, tt.token)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Same(t, user, got)
			}
			provider.AssertExpectations(t)
		})
	}
}
