package mocks

import (
	"context"
	"sort"

	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/store"
)

// MemoryQuestionStore implements store.QuestionStore over a fixed slice of
// questions.
type MemoryQuestionStore struct {
	questions []domain.Question

	// Err, when set, is returned by every method.
	Err error
}

var _ store.QuestionStore = (*MemoryQuestionStore)(nil)

// NewMemoryQuestionStore creates a question store holding the given bank.
func NewMemoryQuestionStore(questions ...domain.Question) *MemoryQuestionStore {
	return &MemoryQuestionStore{questions: questions}
}

// TotalCount implements store.QuestionStore.TotalCount.
func (s *MemoryQuestionStore) TotalCount(ctx context.Context) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.questions), nil
}

// GetByIDs implements store.QuestionStore.GetByIDs.
func (s *MemoryQuestionStore) GetByIDs(
	ctx context.Context,
	ids []string,
) ([]domain.Question, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []domain.Question
	for _, q := range s.questions {
		if wanted[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

// GetByExam implements store.QuestionStore.GetByExam.
func (s *MemoryQuestionStore) GetByExam(
	ctx context.Context,
	examID string,
) ([]domain.Question, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	var out []domain.Question
	for _, q := range s.questions {
		if q.ExamID == examID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}
