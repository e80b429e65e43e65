package repository

import (
	"context"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
)

// MenuRepository defines data access for the menu_items table.
type MenuRepository interface {
	// List retrieves all menu items ordered by id ascending.
	List(ctx context.Context) ([]model.MenuItem, error)

	// Create inserts a menu item and returns the stored row.
	Create(ctx context.Context, in model.MenuItemInput) (*model.MenuItem, error)

	// Update overwrites the editable fields of a menu item.
	// Returns model.ErrNotFound if no row has the given id.
	Update(ctx context.Context, id int64, in model.MenuItemInput) (*model.MenuItem, error)

	// Delete removes a menu item.
	// Returns model.ErrNotFound if no row has the given id.
	Delete(ctx context.Context, id int64) error
}

// PlanRepository defines data access for the subscription_plans table.
type PlanRepository interface {
	List(ctx context.Context) ([]model.SubscriptionPlan, error)
	Create(ctx context.Context, in model.SubscriptionPlanInput) (*model.SubscriptionPlan, error)
	Update(ctx context.Context, id int64, in model.SubscriptionPlanInput) (*model.SubscriptionPlan, error)
	Delete(ctx context.Context, id int64) error
}

// SubscriberRepository defines data access for the subscribers table.
type SubscriberRepository interface {
	List(ctx context.Context) ([]model.Subscriber, error)
	Create(ctx context.Context, in model.SubscriberInput) (*model.Subscriber, error)
	Update(ctx context.Context, id int64, in model.SubscriberInput) (*model.Subscriber, error)
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository defines data access for the four one-row-per-account
// settings tables. Get methods return nil, nil when the account has no row
// yet. Upserts insert or overwrite keyed on the account id.
type SettingsRepository interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	UpsertProfile(ctx context.Context, userID string, in model.ProfileInput) (*model.Profile, error)

	GetBusinessDetails(ctx context.Context, userID string) (*model.BusinessDetails, error)
	UpsertBusinessDetails(ctx context.Context, userID string, in model.BusinessDetailsInput) (*model.BusinessDetails, error)

	GetPaymentDetails(ctx context.Context, userID string) (*model.PaymentDetails, error)
	UpsertPaymentDetails(ctx context.Context, userID string, in model.PaymentDetailsInput) (*model.PaymentDetails, error)

	GetNotificationPreferences(ctx context.Context, userID string) (*model.NotificationPreferences, error)
	UpsertNotificationPreferences(ctx context.Context, userID string, in model.NotificationPreferencesInput) (*model.NotificationPreferences, error)
}
