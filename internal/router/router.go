package router

import (
	"net/http"

	"github.com/tanishkajain081/dabite-restaurant/internal/handler"
	"github.com/tanishkajain081/dabite-restaurant/internal/middleware"
	"github.com/tanishkajain081/dabite-restaurant/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Auth        *handler.AuthHandler
	Menu        *handler.MenuHandler
	Plans       *handler.PlanHandler
	Subscribers *handler.SubscriberHandler
	Settings    *handler.SettingsHandler
	Insights    *handler.InsightsHandler
	Health      *handler.HealthHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, auth service.AuthService, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: Recovery -> RequestID -> Logging -> Metrics -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	// Public endpoints
	r.Get("/", h.Auth.Root)
	r.Get("/health", h.Health.Check)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/signup", h.Auth.Signup)
	r.Post("/login", h.Auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(auth, logger))

		r.Get("/profile", h.Auth.Profile)
		r.Post("/logout", h.Auth.Logout)

		r.Route("/api", func(r chi.Router) {
			r.Route("/menu-items", func(r chi.Router) {
				r.Get("/", h.Menu.List)
				r.Post("/", h.Menu.Create)
				r.Get("/stats", h.Menu.Stats)
				r.Put("/{id}", h.Menu.Update)
				r.Delete("/{id}", h.Menu.Delete)
			})

			r.Route("/subscription-plans", func(r chi.Router) {
				r.Get("/", h.Plans.List)
				r.Post("/", h.Plans.Create)
				r.Put("/{id}", h.Plans.Update)
				r.Delete("/{id}", h.Plans.Delete)
			})

			r.Route("/subscribers", func(r chi.Router) {
				r.Get("/", h.Subscribers.List)
				r.Post("/", h.Subscribers.Create)
				r.Put("/{id}", h.Subscribers.Update)
				r.Delete("/{id}", h.Subscribers.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.ProviderUser(auth, logger))

				r.Get("/profile", h.Settings.GetProfile)
				r.Put("/profile", h.Settings.SaveProfile)
				r.Get("/business", h.Settings.GetBusinessDetails)
				r.Put("/business", h.Settings.SaveBusinessDetails)
				r.Get("/payment", h.Settings.GetPaymentDetails)
				r.Put("/payment", h.Settings.SavePaymentDetails)
				r.Get("/notifications", h.Settings.GetNotificationPreferences)
				r.Put("/notifications", h.Settings.SaveNotificationPreferences)
			})

			r.Get("/dashboard", h.Insights.Dashboard)
			r.Get("/orders", h.Insights.Orders)
			r.Get("/analytics", h.Insights.Analytics)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	})

	return r
}
