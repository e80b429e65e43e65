package service

import (
	"context"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/session"
)

// AuthService defines account and session operations.
type AuthService interface {
	// Signup registers an account with the provider.
	Signup(ctx context.Context, creds model.Credentials) (*model.SignupResponse, error)

	// Login authenticates with the provider and mints a session token.
	Login(ctx context.Context, creds model.Credentials) (*model.LoginResponse, error)

	// Authenticate verifies a bearer token and rejects revoked ones.
	Authenticate(ctx context.Context, rawToken string) (*session.Session, error)

	// Logout revokes the session's token until it expires.
	Logout(ctx context.Context, s *session.Session) error

	// CurrentUser resolves the provider account for a provider access token.
	// Returns model.ErrNotLoggedIn when the token is absent or rejected.
	CurrentUser(ctx context.Context, providerToken string) (*model.ProviderUser, error)
}

// MenuService defines operations over menu items. Mutations return the
// re-listed table.
type MenuService interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Create(ctx context.Context, in model.MenuItemInput) ([]model.MenuItem, error)
	Update(ctx context.Context, id int64, in model.MenuItemInput) ([]model.MenuItem, error)
	Delete(ctx context.Context, id int64) ([]model.MenuItem, error)

	// Stats aggregates availability and category counts.
	Stats(ctx context.Context) (*model.MenuStats, error)
}

// PlanService defines operations over subscription plans.
type PlanService interface {
	List(ctx context.Context) ([]model.SubscriptionPlan, error)
	Create(ctx context.Context, in model.SubscriptionPlanInput) ([]model.SubscriptionPlan, error)
	Update(ctx context.Context, id int64, in model.SubscriptionPlanInput) ([]model.SubscriptionPlan, error)
	Delete(ctx context.Context, id int64) ([]model.SubscriptionPlan, error)
}

// SubscriberService defines operations over subscribers.
type SubscriberService interface {
	List(ctx context.Context) ([]model.Subscriber, error)
	Create(ctx context.Context, in model.SubscriberInput) ([]model.Subscriber, error)
	Update(ctx context.Context, id int64, in model.SubscriberInput) ([]model.Subscriber, error)
	Delete(ctx context.Context, id int64) ([]model.Subscriber, error)
}

// SettingsService defines the per-section settings of the signed-in
// partner. Sections are independent; there is no cross-section transaction.
type SettingsService interface {
	GetProfile(ctx context.Context, user *model.ProviderUser) (*model.Profile, error)
	SaveProfile(ctx context.Context, user *model.ProviderUser, in model.ProfileInput) (*model.Profile, error)

	GetBusinessDetails(ctx context.Context, user *model.ProviderUser) (*model.BusinessDetails, error)
	SaveBusinessDetails(ctx context.Context, user *model.ProviderUser, in model.BusinessDetailsInput) (*model.BusinessDetails, error)

	GetPaymentDetails(ctx context.Context, user *model.ProviderUser) (*model.PaymentDetails, error)
	SavePaymentDetails(ctx context.Context, user *model.ProviderUser, in model.PaymentDetailsInput) (*model.PaymentDetails, error)

	GetNotificationPreferences(ctx context.Context, user *model.ProviderUser) (*model.NotificationPreferences, error)
	SaveNotificationPreferences(ctx context.Context, user *model.ProviderUser, in model.NotificationPreferencesInput) (*model.NotificationPreferences, error)
}

// InsightsService serves the read-only sample datasets.
type InsightsService interface {
	Dashboard(ctx context.Context) model.Dashboard

	// Orders returns the orders board, optionally narrowed to one status.
	// Returns model.ErrInvalidOrderStatus for an unknown status.
	Orders(ctx context.Context, status string) (*model.OrdersResponse, error)

	Analytics(ctx context.Context) model.AnalyticsSummary
}
