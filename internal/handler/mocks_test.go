package handler

import (
	"context"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/session"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, creds model.Credentials) (*model.SignupResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SignupResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, creds model.Credentials) (*model.LoginResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, rawToken string) (*session.Session, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, providerToken string) (*model.ProviderUser, error) {
	args := m.Called(ctx, providerToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProviderUser), args.Error(1)
}

// MockMenuService is a mock implementation of service.MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, in model.MenuItemInput) ([]model.MenuItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Update(ctx context.Context, id int64, in model.MenuItemInput) ([]model.MenuItem, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id int64) ([]model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Stats(ctx context.Context) (*model.MenuStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuStats), args.Error(1)
}

// MockSubscriberService is a mock implementation of service.SubscriberService.
type MockSubscriberService struct {
	mock.Mock
}

func (m *MockSubscriberService) List(ctx context.Context) ([]model.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) Create(ctx context.Context, in model.SubscriberInput) ([]model.Subscriber, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) Update(ctx context.Context, id int64, in model.SubscriberInput) ([]model.Subscriber, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) Delete(ctx context.Context, id int64) ([]model.Subscriber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscriber), args.Error(1)
}

// MockSettingsService is a mock implementation of service.SettingsService.
// Only the profile and notification sections are exercised directly.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetProfile(ctx context.Context, user *model.ProviderUser) (*model.Profile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockSettingsService) SaveProfile(ctx context.Context, user *model.ProviderUser, in model.ProfileInput) (*model.Profile, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockSettingsService) GetBusinessDetails(ctx context.Context, user *model.ProviderUser) (*model.BusinessDetails, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessDetails), args.Error(1)
}

func (m *MockSettingsService) SaveBusinessDetails(ctx context.Context, user *model.ProviderUser, in model.BusinessDetailsInput) (*model.BusinessDetails, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessDetails), args.Error(1)
}

func (m *MockSettingsService) GetPaymentDetails(ctx context.Context, user *model.ProviderUser) (*model.PaymentDetails, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentDetails), args.Error(1)
}

func (m *MockSettingsService) SavePaymentDetails(ctx context.Context, user *model.ProviderUser, in model.PaymentDetailsInput) (*model.PaymentDetails, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentDetails), args.Error(1)
}

func (m *MockSettingsService) GetNotificationPreferences(ctx context.Context, user *model.ProviderUser) (*model.NotificationPreferences, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationPreferences), args.Error(1)
}

func (m *MockSettingsService) SaveNotificationPreferences(ctx context.Context, user *model.ProviderUser, in model.NotificationPreferencesInput) (*model.NotificationPreferences, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationPreferences), args.Error(1)
}

// MockInsightsService is a mock implementation of service.InsightsService.
type MockInsightsService struct {
	mock.Mock
}

func (m *MockInsightsService) Dashboard(ctx context.Context) model.Dashboard {
	return m.Called(ctx).Get(0).(model.Dashboard)
}

func (m *MockInsightsService) Orders(ctx context.Context, status string) (*model.OrdersResponse, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrdersResponse), args.Error(1)
}

func (m *MockInsightsService) Analytics(ctx context.Context) model.AnalyticsSummary {
	return m.Called(ctx).Get(0).(model.AnalyticsSummary)
}
