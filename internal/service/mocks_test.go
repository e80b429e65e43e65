package service

import (
	"context"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockAuthClient is a mock implementation of supabase.AuthClient.
type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) SignUp(ctx context.Context, email, password string) (*model.ProviderUser, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProviderUser), args.Error(1)
}

func (m *MockAuthClient) SignInWithPassword(ctx context.Context, email, password string) (*model.ProviderUser, *model.ProviderSession, error) {
	args := m.Called(ctx, email, password)
	var user *model.ProviderUser
	var sess *model.ProviderSession
	if args.Get(0) != nil {
		user = args.Get(0).(*model.ProviderUser)
	}
	if args.Get(1) != nil {
		sess = args.Get(1).(*model.ProviderSession)
	}
	return user, sess, args.Error(2)
}

func (m *MockAuthClient) GetUser(ctx context.Context, accessToken string) (*model.ProviderUser, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProviderUser), args.Error(1)
}

// MockMenuRepository is a mock implementation of repository.MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, in model.MenuItemInput) (*model.MenuItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, id int64, in model.MenuItemInput) (*model.MenuItem, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlanRepository is a mock implementation of repository.PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) List(ctx context.Context) ([]model.SubscriptionPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanRepository) Create(ctx context.Context, in model.SubscriptionPlanInput) (*model.SubscriptionPlan, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanRepository) Update(ctx context.Context, id int64, in model.SubscriptionPlanInput) (*model.SubscriptionPlan, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubscriptionPlan), args.Error(1)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of repository.SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockSettingsRepository) UpsertProfile(ctx context.Context, userID string, in model.ProfileInput) (*model.Profile, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockSettingsRepository) GetBusinessDetails(ctx context.Context, userID string) (*model.BusinessDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessDetails), args.Error(1)
}

func (m *MockSettingsRepository) UpsertBusinessDetails(ctx context.Context, userID string, in model.BusinessDetailsInput) (*model.BusinessDetails, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessDetails), args.Error(1)
}

func (m *MockSettingsRepository) GetPaymentDetails(ctx context.Context, userID string) (*model.PaymentDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentDetails), args.Error(1)
}

func (m *MockSettingsRepository) UpsertPaymentDetails(ctx context.Context, userID string, in model.PaymentDetailsInput) (*model.PaymentDetails, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentDetails), args.Error(1)
}

func (m *MockSettingsRepository) GetNotificationPreferences(ctx context.Context, userID string) (*model.NotificationPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationPreferences), args.Error(1)
}

func (m *MockSettingsRepository) UpsertNotificationPreferences(ctx context.Context, userID string, in model.NotificationPreferencesInput) (*model.NotificationPreferences, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationPreferences), args.Error(1)
}
