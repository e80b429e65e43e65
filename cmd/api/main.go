package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tanishkajain081/dabite-restaurant/internal/config"
	"github.com/tanishkajain081/dabite-restaurant/internal/database"
	"github.com/tanishkajain081/dabite-restaurant/internal/fixtures"
	"github.com/tanishkajain081/dabite-restaurant/internal/handler"
	"github.com/tanishkajain081/dabite-restaurant/internal/repository"
	"github.com/tanishkajain081/dabite-restaurant/internal/router"
	"github.com/tanishkajain081/dabite-restaurant/internal/service"
	"github.com/tanishkajain081/dabite-restaurant/internal/session"
	"github.com/tanishkajain081/dabite-restaurant/internal/supabase"
	"github.com/tanishkajain081/dabite-restaurant/internal/token"
	"github.com/tanishkajain081/dabite-restaurant/internal/validation"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting dabite partner API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info().Strs("tables", repository.Tables).Msg("database schema ensured")
	}

	revoked, closeStore, err := newRevocationStore(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize revocation store: %w", err)
	}
	defer closeStore()

	catalog, err := fixtures.NewCatalog(ctx, newFixtureLoader(ctx, cfg, logger), logger)
	if err != nil {
		return fmt.Errorf("failed to load sample datasets: %w", err)
	}

	validator, err := validation.New()
	if err != nil {
		return fmt.Errorf("failed to compile request schemas: %w", err)
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(pool, logger)
	planRepo := repository.NewPlanRepository(pool, logger)
	subscriberRepo := repository.NewSubscriberRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)

	// Initialize services
	provider := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.TimeoutDuration(), logger)
	issuer := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TTL())

	authService := service.NewAuthService(provider, issuer, revoked, logger)
	menuService := service.NewMenuService(menuRepo, logger)
	planService := service.NewPlanService(planRepo, logger)
	subscriberService := service.NewSubscriberService(subscriberRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)
	insightsService := service.NewInsightsService(catalog, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService, validator, logger),
		Menu:        handler.NewMenuHandler(menuService, validator, logger),
		Plans:       handler.NewPlanHandler(planService, validator, logger),
		Subscribers: handler.NewSubscriberHandler(subscriberService, validator, logger),
		Settings:    handler.NewSettingsHandler(settingsService, validator, logger),
		Insights:    handler.NewInsightsHandler(insightsService, logger),
		Health:      handler.NewHealthHandler(pool, logger),
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.New(handlers, authService, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newRevocationStore returns the Redis-backed store when enabled and the
// in-process store otherwise. The returned func releases its resources.
func newRevocationStore(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (session.RevocationStore, func(), error) {
	if !cfg.Enabled {
		logger.Info().Msg("using in-memory token revocation store (redis disabled)")
		return session.NewMemoryStore(), func() {}, nil
	}

	client, err := database.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return session.NewRedisStore(client, logger), func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}, nil
}

// newFixtureLoader reads sample datasets from S3 when enabled, falling back
// to the local fixtures directory.
func newFixtureLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) fixtures.Loader {
	fileLoader := fixtures.NewFileLoader(cfg.Fixtures.Dir, logger)

	if !cfg.S3.Enabled {
		logger.Info().Str("dir", cfg.Fixtures.Dir).Msg("using local file system for sample datasets (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := fixtures.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Endpoint, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return fixtures.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
