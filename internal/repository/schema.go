package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/schema.sql
var schemaSQL string

// Tables lists every table the portal reads or writes.
var Tables = []string{
	"menu_items",
	"subscription_plans",
	"subscribers",
	"profiles",
	"business_details",
	"payment_details",
	"notification_preferences",
}

// Migrate creates the portal tables if they do not exist. On a hosted
// project the tables are usually provisioned from the provider console and
// this is only used for local databases and tests.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// translateError maps integrity violations (class 23) and bad input data
// (class 22) reported by Postgres to domain errors carrying the store's
// message verbatim. Other errors pass through.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) != 5 {
		return err
	}
	switch pgErr.Code[:2] {
	case "23":
		return model.NewDomainError(model.ErrCodeConstraint, pgErr.Message)
	case "22":
		return model.NewDomainError(model.ErrCodeValidation, pgErr.Message)
	default:
		return err
	}
}
