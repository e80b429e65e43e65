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

const planColumns = `id, name, duration, meals_per_day, price, active_subscribers, revenue, created_at`

// planRepository implements the PlanRepository interface using PostgreSQL.
type planRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPlanRepository creates a new PostgreSQL-backed subscription plan repository.
func NewPlanRepository(pool *pgxpool.Pool, logger zerolog.Logger) PlanRepository {
	return &planRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "plan").Logger(),
	}
}

func (r *planRepository) List(ctx context.Context) ([]model.SubscriptionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM subscription_plans ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query subscription plans")
		return nil, fmt.Errorf("failed to query subscription plans: %w", err)
	}
	defer rows.Close()

	plans := []model.SubscriptionPlan{}
	for rows.Next() {
		var plan model.SubscriptionPlan
		if err := scanPlan(rows, &plan); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan subscription plan row")
			return nil, fmt.Errorf("failed to scan subscription plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription plans: %w", err)
	}

	return plans, nil
}

// Create inserts a plan. Subscriber count and revenue keep their column
// defaults.
func (r *planRepository) Create(ctx context.Context, in model.SubscriptionPlanInput) (*model.SubscriptionPlan, error) {
	query := `
		INSERT INTO subscription_plans (name, duration, meals_per_day, price)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + planColumns

	var plan model.SubscriptionPlan
	err := scanPlan(
		r.pool.QueryRow(ctx, query, in.Name, in.Duration, in.MealsPerDay.Int(), in.Price.Float64()),
		&plan,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create subscription plan")
		return nil, fmt.Errorf("failed to create subscription plan: %w", translateError(err))
	}

	r.logger.Debug().Int64("plan_id", plan.ID).Msg("subscription plan created")

	return &plan, nil
}

func (r *planRepository) Update(ctx context.Context, id int64, in model.SubscriptionPlanInput) (*model.SubscriptionPlan, error) {
	query := `
		UPDATE subscription_plans
		SET name = $2, duration = $3, meals_per_day = $4, price = $5
		WHERE id = $1
		RETURNING ` + planColumns

	var plan model.SubscriptionPlan
	err := scanPlan(
		r.pool.QueryRow(ctx, query, id, in.Name, in.Duration, in.MealsPerDay.Int(), in.Price.Float64()),
		&plan,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error().Err(err).Int64("plan_id", id).Msg("failed to update subscription plan")
		return nil, fmt.Errorf("failed to update subscription plan: %w", translateError(err))
	}

	return &plan, nil
}

func (r *planRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscription_plans WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("plan_id", id).Msg("failed to delete subscription plan")
		return fmt.Errorf("failed to delete subscription plan: %w", translateError(err))
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanPlan(row pgx.Row, plan *model.SubscriptionPlan) error {
	return row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Duration,
		&plan.MealsPerDay,
		&plan.Price,
		&plan.ActiveSubscribers,
		&plan.Revenue,
		&plan.CreatedAt,
	)
}
