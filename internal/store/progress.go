package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
)

// ProgressStore persists one LearnerProgress record per learner. The engine
// treats it as get-or-default / replace: every mutation loads the latest
// snapshot, computes a complete new one, and saves it atomically.
type ProgressStore interface {
	// Get retrieves the learner's progress record.
	// Returns ErrProgressNotFound if no record has been saved yet; callers
	// fall back to domain.NewLearnerProgress defaults.
	Get(ctx context.Context, userID uuid.UUID) (*domain.LearnerProgress, error)

	// Save replaces the learner's progress record with the given snapshot.
	// The write is a single atomic upsert; a failed save leaves the
	// previously stored record intact.
	Save(ctx context.Context, progress *domain.LearnerProgress) error

	// Delete removes the learner's progress record. Used by the explicit
	// reset operation only. Deleting an absent record is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}
