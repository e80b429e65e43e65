package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/service"
	"github.com/tanishkajain081/dabite-restaurant/internal/session"

	"github.com/rs/zerolog"
)

// ProviderTokenHeader carries the provider access token the settings
// screens use to identify the signed-in account.
const ProviderTokenHeader = "X-Provider-Token"

// BearerAuth verifies the application token from the Authorization header
// and stores the resulting session on the request context. A missing
// header is 401; a malformed, expired, tampered or revoked token is 403.
func BearerAuth(auth service.AuthService, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("middleware", "bearer_auth").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				AuthFailures.WithLabelValues("missing").Inc()
				logger.Warn().Str("path", r.URL.Path).Msg("missing bearer token")
				writeError(w, r, http.StatusUnauthorized, model.ErrNoToken.Message)
				return
			}

			sess, err := auth.Authenticate(r.Context(), bearerToken(header))
			if err != nil {
				if errors.Is(err, model.ErrInvalidToken) || errors.Is(err, model.ErrNoToken) {
					AuthFailures.WithLabelValues("invalid").Inc()
					logger.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected bearer token")
					writeError(w, r, http.StatusForbidden, model.ErrInvalidToken.Message)
					return
				}

				logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to authenticate request")
				writeError(w, r, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		})
	}
}

// ProviderUser resolves the provider account from the X-Provider-Token
// header. Requests without a recognised account get 401.
func ProviderUser(auth service.AuthService, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("middleware", "provider_user").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.CurrentUser(r.Context(), r.Header.Get(ProviderTokenHeader))
			if err != nil {
				if errors.Is(err, model.ErrNotLoggedIn) {
					AuthFailures.WithLabelValues("not_logged_in").Inc()
					writeError(w, r, http.StatusUnauthorized, model.ErrNotLoggedIn.Message)
					return
				}

				logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to resolve provider user")
				writeError(w, r, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithUser(r.Context(), user)))
		})
	}
}

// bearerToken returns the credential after the "Bearer" scheme. Headers
// without a second part yield "", which the verifier rejects.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
