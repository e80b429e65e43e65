// Package database opens the connections the portal depends on: the
// provider's Postgres database and the optional Redis revocation store.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tanishkajain081/dabite-restaurant/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	applicationName = "dabite-restaurant"

	// Supavisor and PgBouncer listen here in transaction mode, where
	// server-side prepared statements do not survive between queries.
	transactionPoolerPort = 6543

	pingAttempts = 3
	pingBackoff  = time.Second
)

// NewPool creates a connection pool to the provider's PostgreSQL database
// and verifies it with a ping, retrying while the database wakes up.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.RuntimeParams["application_name"] = applicationName
	poolConfig.ConnConfig.DefaultQueryExecMode = queryExecMode(cfg.Port)

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Str("sslmode", cfg.SSLMode).
		Stringer("exec_mode", poolConfig.ConnConfig.DefaultQueryExecMode).
		Int("max_connections", cfg.MaxConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pingWithRetry(ctx, pool, pingAttempts, pingBackoff, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

// queryExecMode picks the simple protocol when connecting through a
// transaction-mode pooler.
func queryExecMode(port int) pgx.QueryExecMode {
	if port == transactionPoolerPort {
		return pgx.QueryExecModeSimpleProtocol
	}
	return pgx.QueryExecModeCacheStatement
}

type pinger interface {
	Ping(ctx context.Context) error
}

// pingWithRetry pings up to attempts times, doubling the wait after each
// failure. It gives up early when ctx is done.
func pingWithRetry(ctx context.Context, p pinger, attempts int, backoff time.Duration, logger zerolog.Logger) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = p.Ping(ctx); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", backoff).
			Msg("database not reachable yet")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return err
}
