package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface.
// The record is stored as one JSONB document per learner so the engine's
// load/compute/save cycle maps onto a single-row upsert.
type PostgresProgressStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the
// ProgressStore interface. If logger is nil, the default logger is used.
func NewPostgresProgressStore(db *sql.DB, logger *slog.Logger) *PostgresProgressStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// Get implements store.ProgressStore.Get
// It loads and decodes the learner's JSONB record. Records written by older
// versions may lack newer fields; Normalize fills those with defaults and
// any anomaly is logged rather than propagated.
func (s *PostgresProgressStore) Get(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.LearnerProgress, error) {
	const query = `
		SELECT record
		FROM learner_progress
		WHERE user_id = $1`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProgressNotFound
		}
		return nil, store.NewStoreError("learner_progress", "get", err)
	}

	progress := domain.NewLearnerProgress(userID)
	if err := json.Unmarshal(raw, progress); err != nil {
		return nil, store.NewStoreError("learner_progress", "decode", err)
	}
	progress.UserID = userID

	if progress.Normalize() {
		s.logger.Warn("repaired inconsistent progress record on load",
			slog.String("user_id", userID.String()))
	}

	return progress, nil
}

// Save implements store.ProgressStore.Save
// The whole record is replaced in one upsert so no reader ever observes a
// partially-updated snapshot.
func (s *PostgresProgressStore) Save(
	ctx context.Context,
	progress *domain.LearnerProgress,
) error {
	if err := progress.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	raw, err := json.Marshal(progress)
	if err != nil {
		return store.NewStoreError("learner_progress", "encode", err)
	}

	const query = `
		INSERT INTO learner_progress (user_id, record, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`

	_, err = s.db.ExecContext(ctx, query, progress.UserID, raw, time.Now().UTC())
	if err != nil {
		return store.NewStoreError("learner_progress", "save", err)
	}

	return nil
}

// Delete implements store.ProgressStore.Delete
func (s *PostgresProgressStore) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM learner_progress WHERE user_id = $1`

	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return store.NewStoreError("learner_progress", "delete", err)
	}

	return nil
}
