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

// Dates travel as YYYY-MM-DD strings; an empty string is stored as NULL.
const subscriberColumns = `id, customer_name, plan_type,
	COALESCE(start_date::text, ''), COALESCE(end_date::text, ''),
	delivery_status, customization, created_at`

// subscriberRepository implements the SubscriberRepository interface using PostgreSQL.
type subscriberRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSubscriberRepository creates a new PostgreSQL-backed subscriber repository.
func NewSubscriberRepository(pool *pgxpool.Pool, logger zerolog.Logger) SubscriberRepository {
	return &subscriberRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "subscriber").Logger(),
	}
}

func (r *subscriberRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscribers ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query subscribers")
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []model.Subscriber{}
	for rows.Next() {
		var s model.Subscriber
		if err := scanSubscriber(rows, &s); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan subscriber row")
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscribers: %w", err)
	}

	return subscribers, nil
}

func (r *subscriberRepository) Create(ctx context.Context, in model.SubscriberInput) (*model.Subscriber, error) {
	query := `
		INSERT INTO subscribers (customer_name, plan_type, start_date, end_date, delivery_status, customization)
		VALUES ($1, $2, NULLIF($3::text, '')::date, NULLIF($4::text, '')::date, $5, $6)
		RETURNING ` + subscriberColumns

	var s model.Subscriber
	err := scanSubscriber(
		r.pool.QueryRow(ctx, query,
			in.CustomerName, in.PlanType, in.StartDate, in.EndDate, deliveryStatus(in.DeliveryStatus), in.Customization),
		&s,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_name", in.CustomerName).Msg("failed to create subscriber")
		return nil, fmt.Errorf("failed to create subscriber: %w", translateError(err))
	}

	r.logger.Debug().Int64("subscriber_id", s.ID).Msg("subscriber created")

	return &s, nil
}

func (r *subscriberRepository) Update(ctx context.Context, id int64, in model.SubscriberInput) (*model.Subscriber, error) {
	query := `
		UPDATE subscribers
		SET customer_name = $2,
			plan_type = $3,
			start_date = NULLIF($4::text, '')::date,
			end_date = NULLIF($5::text, '')::date,
			delivery_status = $6,
			customization = $7
		WHERE id = $1
		RETURNING ` + subscriberColumns

	var s model.Subscriber
	err := scanSubscriber(
		r.pool.QueryRow(ctx, query,
			id, in.CustomerName, in.PlanType, in.StartDate, in.EndDate, deliveryStatus(in.DeliveryStatus), in.Customization),
		&s,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error().Err(err).Int64("subscriber_id", id).Msg("failed to update subscriber")
		return nil, fmt.Errorf("failed to update subscriber: %w", translateError(err))
	}

	return &s, nil
}

func (r *subscriberRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("subscriber_id", id).Msg("failed to delete subscriber")
		return fmt.Errorf("failed to delete subscriber: %w", translateError(err))
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func deliveryStatus(s string) string {
	if s == "" {
		return model.DeliveryStatusActive
	}
	return s
}

func scanSubscriber(row pgx.Row, s *model.Subscriber) error {
	return row.Scan(
		&s.ID,
		&s.CustomerName,
		&s.PlanType,
		&s.StartDate,
		&s.EndDate,
		&s.DeliveryStatus,
		&s.Customization,
		&s.CreatedAt,
	)
}
