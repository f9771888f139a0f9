package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/store"
)

// PostgresAttemptStore implements the store.AttemptStore interface.
type PostgresAttemptStore struct {
	db *sql.DB
}

// NewPostgresAttemptStore creates a new PostgreSQL implementation of the
// AttemptStore interface.
func NewPostgresAttemptStore(db *sql.DB) *PostgresAttemptStore {
	return &PostgresAttemptStore{db: db}
}

// Ensure PostgresAttemptStore implements store.AttemptStore interface
var _ store.AttemptStore = (*PostgresAttemptStore)(nil)

// Create implements store.AttemptStore.Create
func (s *PostgresAttemptStore) Create(ctx context.Context, attempt *domain.ExamAttempt) error {
	if err := attempt.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return store.NewStoreError("exam_attempt", "encode", err)
	}

	const query = `
		INSERT INTO exam_attempts
			(id, user_id, exam_id, started_at, completed_at, answers, score, total_questions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = s.db.ExecContext(ctx, query,
		attempt.ID, attempt.UserID, attempt.ExamID,
		attempt.StartedAt, attempt.CompletedAt,
		answers, attempt.Score, attempt.TotalQuestions)
	if err != nil {
		return store.NewStoreError("exam_attempt", "create", err)
	}

	return nil
}

// ListByUser implements store.AttemptStore.ListByUser
func (s *PostgresAttemptStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.ExamAttempt, error) {
	const query = `
		SELECT id, user_id, exam_id, started_at, completed_at, answers, score, total_questions
		FROM exam_attempts
		WHERE user_id = $1
		ORDER BY completed_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, store.NewStoreError("exam_attempt", "list", err)
	}
	defer func() { _ = rows.Close() }()

	var attempts []domain.ExamAttempt
	for rows.Next() {
		var attempt domain.ExamAttempt
		var answers []byte

		err := rows.Scan(
			&attempt.ID, &attempt.UserID, &attempt.ExamID,
			&attempt.StartedAt, &attempt.CompletedAt,
			&answers, &attempt.Score, &attempt.TotalQuestions)
		if err != nil {
			return nil, store.NewStoreError("exam_attempt", "scan", err)
		}

		if err := json.Unmarshal(answers, &attempt.Answers); err != nil {
			return nil, store.NewStoreError("exam_attempt", "decode", err)
		}

		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("exam_attempt", "list", err)
	}

	return attempts, nil
}
