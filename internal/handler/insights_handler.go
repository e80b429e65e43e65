package handler

import (
	"net/http"
	"strings"

	"github.com/tanishkajain081/dabite-restaurant/internal/service"

	"github.com/rs/zerolog"
)

// InsightsHandler serves the dashboard, orders and analytics screens.
type InsightsHandler struct {
	service service.InsightsService
	logger  zerolog.Logger
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(service service.InsightsService, logger zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{
		service: service,
		logger:  logger.With().Str("handler", "insights").Logger(),
	}
}

// Dashboard handles GET /api/dashboard requests.
func (h *InsightsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Dashboard(r.Context()))
}

// Orders handles GET /api/orders requests with an optional ?status= filter.
func (h *InsightsHandler) Orders(w http.ResponseWriter, r *http.Request) {
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))

	resp, err := h.service.Orders(r.Context(), status)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Analytics handles GET /api/analytics requests.
func (h *InsightsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Analytics(r.Context()))
}
