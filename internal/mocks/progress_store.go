package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/store"
)

// MemoryProgressStore implements store.ProgressStore in memory.
type MemoryProgressStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.LearnerProgress

	// SaveErr, when set, is returned by Save to simulate store failures.
	SaveErr error

	// SaveCount tracks how many saves succeeded.
	SaveCount int
}

var _ store.ProgressStore = (*MemoryProgressStore)(nil)

// NewMemoryProgressStore creates an empty in-memory progress store.
func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{
		records: make(map[uuid.UUID]*domain.LearnerProgress),
	}
}

// Get implements store.ProgressStore.Get.
func (s *MemoryProgressStore) Get(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.LearnerProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[userID]
	if !ok {
		return nil, store.ErrProgressNotFound
	}
	return record.Clone(), nil
}

// Save implements store.ProgressStore.Save.
func (s *MemoryProgressStore) Save(
	ctx context.Context,
	progress *domain.LearnerProgress,
) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[progress.UserID] = progress.Clone()
	s.SaveCount++
	return nil
}

// Delete implements store.ProgressStore.Delete.
func (s *MemoryProgressStore) Delete(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[userID]; !ok {
		return store.ErrProgressNotFound
	}
	delete(s.records, userID)
	return nil
}
