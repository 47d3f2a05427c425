// Command createuser registers an API user who can then obtain tokens
// from POST /auth/login/.
//
//	CLICKS_PASSWORD=secret createuser --username analyst
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"click-logs/internal/adapter/postgres"
	"click-logs/internal/adapter/usecase"
	"click-logs/internal/config"
	"click-logs/internal/db"
)

func main() {
	os.Exit(run())
}

func run() int {
	username := flag.String("username", "", "name of the new user")
	flag.Parse()
	password := os.Getenv("CLICKS_PASSWORD")
	if *username == "" || password == "" {
		flag.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	logger := cfg.Log.New(os.Stderr)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return 1
		}
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	auth := usecase.NewAuthUseCase(postgres.NewUserRepository(pool), nil, cfg.Auth.TokenTTL, 0, logger)
	user, err := auth.CreateUser(ctx, *username, password)
	if err != nil {
		logger.Error("create user", slog.Any("error", err))
		return 1
	}
	logger.Info("user created", slog.String("username", user.Username), slog.String("id", user.ID.String()))
	return 0
}
