package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// settingsRepository implements the SettingsRepository interface using
// PostgreSQL. Account ids are UUIDs in the store and strings in the API;
// every query casts on the way in and out.
type settingsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSettingsRepository creates a new PostgreSQL-backed settings repository.
func NewSettingsRepository(pool *pgxpool.Pool, logger zerolog.Logger) SettingsRepository {
	return &settingsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "settings").Logger(),
	}
}

const profileColumns = `id::text, first_name, last_name, email, phone, updated_at`

func (r *settingsRepository) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1::text::uuid`

	var p model.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get profile")
		return nil, fmt.Errorf("failed to get profile: %w", translateError(err))
	}

	return &p, nil
}

func (r *settingsRepository) UpsertProfile(ctx context.Context, userID string, in model.ProfileInput) (*model.Profile, error) {
	query := `
		INSERT INTO profiles (id, first_name, last_name, email, phone, updated_at)
		VALUES ($1::text::uuid, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + profileColumns

	var p model.Profile
	err := r.pool.QueryRow(ctx, query, userID, in.FirstName, in.LastName, in.Email, in.Phone).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to upsert profile")
		return nil, fmt.Errorf("failed to upsert profile: %w", translateError(err))
	}

	return &p, nil
}

const businessColumns = `user_id::text, business_name, address, city, pincode, description, updated_at`

func (r *settingsRepository) GetBusinessDetails(ctx context.Context, userID string) (*model.BusinessDetails, error) {
	query := `SELECT ` + businessColumns + ` FROM business_details WHERE user_id = $1::text::uuid`

	var b model.BusinessDetails
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&b.UserID, &b.BusinessName, &b.Address, &b.City, &b.Pincode, &b.Description, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get business details")
		return nil, fmt.Errorf("failed to get business details: %w", translateError(err))
	}

	return &b, nil
}

func (r *settingsRepository) UpsertBusinessDetails(ctx context.Context, userID string, in model.BusinessDetailsInput) (*model.BusinessDetails, error) {
	query := `
		INSERT INTO business_details (user_id, business_name, address, city, pincode, description, updated_at)
		VALUES ($1::text::uuid, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			pincode = EXCLUDED.pincode,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + businessColumns

	var b model.BusinessDetails
	err := r.pool.QueryRow(ctx, query,
		userID, in.BusinessName, in.Address, in.City, in.Pincode, in.Description,
	).Scan(
		&b.UserID, &b.BusinessName, &b.Address, &b.City, &b.Pincode, &b.Description, &b.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to upsert business details")
		return nil, fmt.Errorf("failed to upsert business details: %w", translateError(err))
	}

	return &b, nil
}

const paymentColumns = `user_id::text, account_holder, account_number, ifsc, bank_name, upi_id, updated_at`

func (r *settingsRepository) GetPaymentDetails(ctx context.Context, userID string) (*model.PaymentDetails, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_details WHERE user_id = $1::text::uuid`

	var p model.PaymentDetails
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.AccountHolder, &p.AccountNumber, &p.IFSC, &p.BankName, &p.UPIID, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get payment details")
		return nil, fmt.Errorf("failed to get payment details: %w", translateError(err))
	}

	return &p, nil
}

func (r *settingsRepository) UpsertPaymentDetails(ctx context.Context, userID string, in model.PaymentDetailsInput) (*model.PaymentDetails, error) {
	query := `
		INSERT INTO payment_details (user_id, account_holder, account_number, ifsc, bank_name, upi_id, updated_at)
		VALUES ($1::text::uuid, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			account_holder = EXCLUDED.account_holder,
			account_number = EXCLUDED.account_number,
			ifsc = EXCLUDED.ifsc,
			bank_name = EXCLUDED.bank_name,
			upi_id = EXCLUDED.upi_id,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + paymentColumns

	var p model.PaymentDetails
	err := r.pool.QueryRow(ctx, query,
		userID, in.AccountHolder, in.AccountNumber, in.IFSC, in.BankName, in.UPIID,
	).Scan(
		&p.UserID, &p.AccountHolder, &p.AccountNumber, &p.IFSC, &p.BankName, &p.UPIID, &p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to upsert payment details")
		return nil, fmt.Errorf("failed to upsert payment details: %w", translateError(err))
	}

	return &p, nil
}

const notificationColumns = `user_id::text, new_orders, payment_received, subscription_renewals, reviews, marketing, updated_at`

func (r *settingsRepository) GetNotificationPreferences(ctx context.Context, userID string) (*model.NotificationPreferences, error) {
	query := `SELECT ` + notificationColumns + ` FROM notification_preferences WHERE user_id = $1::text::uuid`

	var n model.NotificationPreferences
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&n.UserID, &n.NewOrders, &n.PaymentReceived, &n.SubscriptionRenewals, &n.Reviews, &n.Marketing, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get notification preferences")
		return nil, fmt.Errorf("failed to get notification preferences: %w", translateError(err))
	}

	return &n, nil
}

func (r *settingsRepository) UpsertNotificationPreferences(ctx context.Context, userID string, in model.NotificationPreferencesInput) (*model.NotificationPreferences, error) {
	query := `
		INSERT INTO notification_preferences
			(user_id, new_orders, payment_received, subscription_renewals, reviews, marketing, updated_at)
		VALUES ($1::text::uuid, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			new_orders = EXCLUDED.new_orders,
			payment_received = EXCLUDED.payment_received,
			subscription_renewals = EXCLUDED.subscription_renewals,
			reviews = EXCLUDED.reviews,
			marketing = EXCLUDED.marketing,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + notificationColumns

	var n model.NotificationPreferences
	err := r.pool.QueryRow(ctx, query,
		userID, in.NewOrders, in.PaymentReceived, in.SubscriptionRenewals, in.Reviews, in.Marketing,
	).Scan(
		&n.UserID, &n.NewOrders, &n.PaymentReceived, &n.SubscriptionRenewals, &n.Reviews, &n.Marketing, &n.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to upsert notification preferences")
		return nil, fmt.Errorf("failed to upsert notification preferences: %w", translateError(err))
	}

	return &n, nil
}
