package handler

import (
	"context"
	"net/http"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/service"
	"github.com/tanishkajain081/dabite-restaurant/internal/session"
	"github.com/tanishkajain081/dabite-restaurant/internal/validation"

	"github.com/rs/zerolog"
)

// SettingsHandler handles the four settings sections of the signed-in
// partner. Each section is read and saved on its own.
type SettingsHandler struct {
	service   service.SettingsService
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(service service.SettingsService, validator *validation.Validator, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("handler", "settings").Logger(),
	}
}

// GetProfile handles GET /api/settings/profile requests.
func (h *SettingsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	getSection(h, w, r, h.service.GetProfile)
}

// SaveProfile handles PUT /api/settings/profile requests.
func (h *SettingsHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	saveSection(h, w, r, validation.Profile, h.service.SaveProfile)
}

// GetBusinessDetails handles GET /api/settings/business requests.
func (h *SettingsHandler) GetBusinessDetails(w http.ResponseWriter, r *http.Request) {
	getSection(h, w, r, h.service.GetBusinessDetails)
}

// SaveBusinessDetails handles PUT /api/settings/business requests.
func (h *SettingsHandler) SaveBusinessDetails(w http.ResponseWriter, r *http.Request) {
	saveSection(h, w, r, validation.BusinessDetails, h.service.SaveBusinessDetails)
}

// GetPaymentDetails handles GET /api/settings/payment requests.
func (h *SettingsHandler) GetPaymentDetails(w http.ResponseWriter, r *http.Request) {
	getSection(h, w, r, h.service.GetPaymentDetails)
}

// SavePaymentDetails handles PUT /api/settings/payment requests.
func (h *SettingsHandler) SavePaymentDetails(w http.ResponseWriter, r *http.Request) {
	saveSection(h, w, r, validation.PaymentDetails, h.service.SavePaymentDetails)
}

// GetNotificationPreferences handles GET /api/settings/notifications requests.
func (h *SettingsHandler) GetNotificationPreferences(w http.ResponseWriter, r *http.Request) {
	getSection(h, w, r, h.service.GetNotificationPreferences)
}

// SaveNotificationPreferences handles PUT /api/settings/notifications requests.
func (h *SettingsHandler) SaveNotificationPreferences(w http.ResponseWriter, r *http.Request) {
	saveSection(h, w, r, validation.NotificationPreferences, h.service.SaveNotificationPreferences)
}

func getSection[Out any](
	h *SettingsHandler,
	w http.ResponseWriter,
	r *http.Request,
	get func(context.Context, *model.ProviderUser) (Out, error),
) {
	user, ok := session.UserFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, model.ErrNotLoggedIn, h.logger)
		return
	}

	out, err := get(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func saveSection[In, Out any](
	h *SettingsHandler,
	w http.ResponseWriter,
	r *http.Request,
	schema validation.Schema,
	save func(context.Context, *model.ProviderUser, In) (Out, error),
) {
	user, ok := session.UserFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, model.ErrNotLoggedIn, h.logger)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	var in In
	if err := h.validator.Decode(schema, body, &in); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	out, err := save(r.Context(), user, in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	h.logger.Info().Str("user_id", user.ID).Str("section", string(schema)).Msg("settings saved")
	writeJSON(w, http.StatusOK, out)
}
