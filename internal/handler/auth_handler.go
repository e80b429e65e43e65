package handler

import (
	"bytes"
	"net/http"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/service"
	"github.com/tanishkajain081/dabite-restaurant/internal/session"
	"github.com/tanishkajain081/dabite-restaurant/internal/validation"

	"github.com/rs/zerolog"
)

// ReachableMessage is the plain-text body of GET /.
const ReachableMessage = "Backend server is running and reachable!"

// AuthHandler handles account and session requests.
type AuthHandler struct {
	service   service.AuthService
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, validator *validation.Validator, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("handler", "auth").Logger(),
	}
}

// Root handles GET / requests.
func (h *AuthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ReachableMessage))
}

// Signup handles POST /signup requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Signup(r.Context(), creds)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Login handles POST /login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Login(r.Context(), creds)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Profile handles GET /profile requests. The caller is the verified
// session placed on the context by the bearer middleware.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeServiceError(w, r, model.ErrNoToken, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ProfileResponse{
		Message: model.MsgProfileGranted,
		User:    sess.Claims,
	})
}

// Logout handles POST /logout requests.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeServiceError(w, r, model.ErrNoToken, h.logger)
		return
	}

	if err := h.service.Logout(r.Context(), sess); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: model.MsgLogoutSuccess})
}

func (h *AuthHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (model.Credentials, bool) {
	var creds model.Credentials

	body, err := readBody(w, r)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return creds, false
	}

	// An absent body counts as an empty form.
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if err := h.validator.Decode(validation.Credentials, body, &creds); err != nil {
		writeServiceError(w, r, err, h.logger)
		return creds, false
	}

	return creds, true
}
