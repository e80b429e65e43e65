package service

import (
	"context"
	"fmt"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/repository"

	"github.com/rs/zerolog"
)

// settingsService implements SettingsService.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       zerolog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo repository.SettingsRepository, logger zerolog.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger.With().Str("service", "settings").Logger(),
	}
}

func requireUser(user *model.ProviderUser) error {
	if user == nil || user.ID == "" {
		return model.ErrNotLoggedIn
	}
	return nil
}

// GetProfile returns the stored profile, or a blank one prefilled with the
// account email when nothing has been saved yet.
func (s *settingsService) GetProfile(ctx context.Context, user *model.ProviderUser) (*model.Profile, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	profile, err := s.settingsRepo.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return &model.Profile{ID: user.ID, Email: user.Email}, nil
	}
	return profile, nil
}

func (s *settingsService) SaveProfile(ctx context.Context, user *model.ProviderUser, in model.ProfileInput) (*model.Profile, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	profile, err := s.settingsRepo.UpsertProfile(ctx, user.ID, in)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("profile saved")
	return profile, nil
}

func (s *settingsService) GetBusinessDetails(ctx context.Context, user *model.ProviderUser) (*model.BusinessDetails, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	details, err := s.settingsRepo.GetBusinessDetails(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get business details: %w", err)
	}
	if details == nil {
		return &model.BusinessDetails{UserID: user.ID}, nil
	}
	return details, nil
}

func (s *settingsService) SaveBusinessDetails(ctx context.Context, user *model.ProviderUser, in model.BusinessDetailsInput) (*model.BusinessDetails, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	details, err := s.settingsRepo.UpsertBusinessDetails(ctx, user.ID, in)
	if err != nil {
		return nil, fmt.Errorf("failed to save business details: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("business details saved")
	return details, nil
}

func (s *settingsService) GetPaymentDetails(ctx context.Context, user *model.ProviderUser) (*model.PaymentDetails, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	details, err := s.settingsRepo.GetPaymentDetails(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment details: %w", err)
	}
	if details == nil {
		return &model.PaymentDetails{UserID: user.ID}, nil
	}
	return details, nil
}

func (s *settingsService) SavePaymentDetails(ctx context.Context, user *model.ProviderUser, in model.PaymentDetailsInput) (*model.PaymentDetails, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	details, err := s.settingsRepo.UpsertPaymentDetails(ctx, user.ID, in)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment details: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("payment details saved")
	return details, nil
}

// GetNotificationPreferences returns the stored toggles, or the column
// defaults when nothing has been saved yet.
func (s *settingsService) GetNotificationPreferences(ctx context.Context, user *model.ProviderUser) (*model.NotificationPreferences, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	prefs, err := s.settingsRepo.GetNotificationPreferences(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification preferences: %w", err)
	}
	if prefs == nil {
		return &model.NotificationPreferences{
			UserID:               user.ID,
			NewOrders:            true,
			PaymentReceived:      true,
			SubscriptionRenewals: true,
			Reviews:              true,
		}, nil
	}
	return prefs, nil
}

func (s *settingsService) SaveNotificationPreferences(ctx context.Context, user *model.ProviderUser, in model.NotificationPreferencesInput) (*model.NotificationPreferences, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	prefs, err := s.settingsRepo.UpsertNotificationPreferences(ctx, user.ID, in)
	if err != nil {
		return nil, fmt.Errorf("failed to save notification preferences: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("notification preferences saved")
	return prefs, nil
}
