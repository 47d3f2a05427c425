package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	httpadapter "click-logs/internal/adapter/http"
	"click-logs/internal/adapter/postgres"
	"click-logs/internal/adapter/rediscache"
	"click-logs/internal/adapter/usecase"
	"click-logs/internal/config"
	"click-logs/internal/db"
)

// main is the entry point of the click-logs API. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// the optional Redis token cache and repositories, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout)

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo clicks seeded", slog.Int("campaign", db.DemoCampaign))
	}

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		logger.Info("redis not configured, token cache disabled")
	}

	loc, err := cfg.Clicks.Location()
	if err != nil {
		logger.Error("invalid time zone", slog.Any("error", err))
		return
	}

	clicks := usecase.NewClickUseCase(postgres.NewClickRepository(pool), loc)
	auth := usecase.NewAuthUseCase(
		postgres.NewUserRepository(pool),
		rediscache.NewTokenCache(rdb),
		cfg.Auth.TokenTTL,
		cfg.Redis.TokenTTL,
		logger,
	)

	handler := httpadapter.NewHandler(clicks, auth, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("time_zone", loc.String()))
	if err = serve(ctx, srv, cfg.HTTP.ShutdownTimeout, logger); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	exitCode = 0
}
