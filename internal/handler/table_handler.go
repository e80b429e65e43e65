package handler

import (
	"context"
	"net/http"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/service"
	"github.com/tanishkajain081/dabite-restaurant/internal/validation"

	"github.com/rs/zerolog"
)

// tableService is the shape shared by the menu, plan and subscriber
// services.
type tableService[T, In any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, in In) ([]T, error)
	Update(ctx context.Context, id int64, in In) ([]T, error)
	Delete(ctx context.Context, id int64) ([]T, error)
}

// tableHandler serves list/create/update/delete for one table. Every
// mutation responds with the re-listed table.
type tableHandler[T, In any] struct {
	service   tableService[T, In]
	validator *validation.Validator
	schema    validation.Schema
	logger    zerolog.Logger
}

func newTableHandler[T, In any](
	svc tableService[T, In],
	validator *validation.Validator,
	schema validation.Schema,
	name string,
	logger zerolog.Logger,
) *tableHandler[T, In] {
	return &tableHandler[T, In]{
		service:   svc,
		validator: validator,
		schema:    schema,
		logger:    logger.With().Str("handler", name).Logger(),
	}
}

// List handles GET requests on the collection.
func (h *tableHandler[T, In]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// Create handles POST requests on the collection.
func (h *tableHandler[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, rows)
}

// Update handles PUT requests on /{id}.
func (h *tableHandler[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// Delete handles DELETE requests on /{id}.
func (h *tableHandler[T, In]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	rows, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *tableHandler[T, In]) decode(w http.ResponseWriter, r *http.Request) (In, bool) {
	var in In

	body, err := readBody(w, r)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return in, false
	}

	if err := h.validator.Decode(h.schema, body, &in); err != nil {
		writeServiceError(w, r, err, h.logger)
		return in, false
	}

	return in, true
}

// MenuHandler handles menu item requests.
type MenuHandler struct {
	*tableHandler[model.MenuItem, model.MenuItemInput]
	menu service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(svc service.MenuService, validator *validation.Validator, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		tableHandler: newTableHandler[model.MenuItem, model.MenuItemInput](svc, validator, validation.MenuItem, "menu", logger),
		menu:         svc,
	}
}

// Stats handles GET /api/menu-items/stats requests.
func (h *MenuHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.menu.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// PlanHandler handles subscription plan requests.
type PlanHandler struct {
	*tableHandler[model.SubscriptionPlan, model.SubscriptionPlanInput]
}

// NewPlanHandler creates a new subscription plan handler.
func NewPlanHandler(svc service.PlanService, validator *validation.Validator, logger zerolog.Logger) *PlanHandler {
	return &PlanHandler{
		tableHandler: newTableHandler[model.SubscriptionPlan, model.SubscriptionPlanInput](svc, validator, validation.SubscriptionPlan, "plan", logger),
	}
}

// SubscriberHandler handles subscriber requests.
type SubscriberHandler struct {
	*tableHandler[model.Subscriber, model.SubscriberInput]
}

// NewSubscriberHandler creates a new subscriber handler.
func NewSubscriberHandler(svc service.SubscriberService, validator *validation.Validator, logger zerolog.Logger) *SubscriberHandler {
	return &SubscriberHandler{
		tableHandler: newTableHandler[model.Subscriber, model.SubscriberInput](svc, validator, validation.Subscriber, "subscriber", logger),
	}
}
