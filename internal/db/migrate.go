package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"click-logs/db/migrations"
)

// ErrDirty is returned when a previous migration failed half way and
// needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// migrateLogger adapts slog to migrate.Logger.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (l migrateLogger) Verbose() bool { return false }

// Migrate brings the database at addr to migrations.Version using the
// embedded SQL files. A nil logger discards migrate's output.
func Migrate(addr string, logger *slog.Logger) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()
	if logger != nil {
		mg.Log = migrateLogger{logger: logger}
	}

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirty, from)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if logger != nil && from != migrations.Version {
		logger.Info("schema migrated", slog.Uint64("from", uint64(from)), slog.Uint64("to", migrations.Version))
	}
	return nil
}
