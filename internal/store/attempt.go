package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
)

// AttemptStore persists completed exam attempts. Attempts are immutable:
// there is no update or delete, the history only grows.
type AttemptStore interface {
	// Create saves a new completed exam attempt.
	// Returns ErrInvalidEntity (wrapping the validation error) if the
	// attempt fails domain validation.
	Create(ctx context.Context, attempt *domain.ExamAttempt) error

	// ListByUser retrieves the learner's attempts, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExamAttempt, error)
}
