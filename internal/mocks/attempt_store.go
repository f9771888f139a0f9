package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/store"
)

// MemoryAttemptStore implements store.AttemptStore in memory.
type MemoryAttemptStore struct {
	mu       sync.RWMutex
	attempts []domain.ExamAttempt

	// CreateErr, when set, is returned by Create.
	CreateErr error
}

var _ store.AttemptStore = (*MemoryAttemptStore)(nil)

// NewMemoryAttemptStore creates an empty in-memory attempt store.
func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{}
}

// Create implements store.AttemptStore.Create.
func (s *MemoryAttemptStore) Create(ctx context.Context, attempt *domain.ExamAttempt) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	if err := attempt.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts = append(s.attempts, *attempt)
	return nil
}

// ListByUser implements store.AttemptStore.ListByUser.
func (s *MemoryAttemptStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.ExamAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ExamAttempt
	for _, a := range s.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out, nil
}
