package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/openaws/openaws-api/internal/config"
	"github.com/openaws/openaws-api/internal/domain/review"
	"github.com/openaws/openaws-api/internal/domain/streak"
	"github.com/openaws/openaws-api/internal/platform/clock"
	"github.com/openaws/openaws-api/internal/platform/postgres"
	"github.com/openaws/openaws-api/internal/service/auth"
	"github.com/openaws/openaws-api/internal/service/progress"
	"github.com/openaws/openaws-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore     store.UserStore
	progressStore store.ProgressStore
	questionStore store.QuestionStore
	attemptStore  store.AttemptStore

	// Services
	jwtService      auth.JWTService
	passwordHasher  auth.PasswordHasher
	progressService progress.ProgressService
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logging, and the database connection must be
// established before this is called.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	log.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db)
	app.progressStore = postgres.NewPostgresProgressStore(db, log)
	app.questionStore = postgres.NewPostgresQuestionStore(db)
	app.attemptStore = postgres.NewPostgresAttemptStore(db)

	streakParams := streak.NewDefaultParams()
	streakParams.DailyGoal = cfg.Study.DailyStreakGoal

	reviewParams := review.NewDefaultParams()
	reviewParams.MaxIntervalDays = cfg.Study.MaxReviewIntervalDays

	app.progressService = progress.NewProgressService(
		app.progressStore,
		app.questionStore,
		app.attemptStore,
		review.NewServiceWithParams(reviewParams),
		streakParams,
		clock.NewSystem(),
		log,
	)

	log.Info("application initialized")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.Any("error", err))
		}
	}

	app.logger.Info("application shutdown completed")
}
