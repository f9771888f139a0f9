package main

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/pressly/goose/v3"

	"github.com/openaws/openaws-api/internal/config"
	"github.com/openaws/openaws-api/migrations"
)

// slogGooseLogger adapts the goose logger interface to slog. Fatalf does not
// call os.Exit so that main keeps control of process exit.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

// runMigrations executes a goose migration command against the configured
// database. Supported commands: up, down, status, version.
func runMigrations(cfg *config.Config, log *slog.Logger, command string) error {
	log.Info("executing migrations",
		slog.String("command", command),
		slog.String("database_url", maskDatabaseURL(cfg.Database.URL)))

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect for migrations: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close migration connection", slog.Any("error", closeErr))
		}
	}()

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	case "version":
		err = goose.Version(db, ".")
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info("migrations completed", slog.String("command", command))
	return nil
}

// maskDatabaseURL masks the password in a database URL for safe logging.
func maskDatabaseURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}

	if parsed.User != nil {
		parsed.User = url.UserPassword(parsed.User.Username(), "****")
		return parsed.String()
	}

	return dbURL
}
