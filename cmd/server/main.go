// Package main implements the entry point for the OpenAWS API server,
// which tracks learner progress for self-study quiz sessions: streaks,
// XP, per-domain mastery, spaced-repetition reviews, and exam attempts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/openaws/openaws-api/internal/config"
	"github.com/openaws/openaws-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command instead of serving (up, down, status)")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		slog.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, and either executes a
// migration command or starts the server. Separated from main so it can
// return errors instead of exiting.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	if migrateCmd != "" {
		return runMigrations(cfg, log, migrateCmd)
	}

	ctx := context.Background()

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		// newApplication does not own db until it returns.
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close database", slog.Any("error", closeErr))
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
