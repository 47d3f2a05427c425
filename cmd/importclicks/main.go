// Command importclicks loads clicks from a CSV export into the database.
//
//	importclicks --path clicks.csv
//
// Rows without an id are skipped and (campaign, timestamp) pairs already
// present are left alone. Do not run two imports over the same data at
// once.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"click-logs/internal/adapter/postgres"
	"click-logs/internal/config"
	"click-logs/internal/db"
	"click-logs/internal/importer"
)

func main() {
	os.Exit(run())
}

func run() int {
	path := flag.String("path", "", "CSV file to import")
	flag.Parse()
	if *path == "" {
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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	f, err := os.Open(*path)
	if err != nil {
		logger.Error("open input", slog.Any("error", err))
		return 1
	}
	defer f.Close()

	im := importer.New(postgres.NewClickRepository(pool), logger)
	if _, err = im.Import(ctx, f); err != nil {
		logger.Error("import failed", slog.String("path", *path), slog.Any("error", err))
		return 1
	}
	return 0
}
