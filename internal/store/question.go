package store

import (
	"context"

	"github.com/openaws/openaws-api/internal/domain"
)

// QuestionStore provides read access to the static question bank.
// The bank is loaded by a separate ingestion step; the API never writes it.
type QuestionStore interface {
	// TotalCount returns the size of the question bank. Used by the
	// coverage badges.
	TotalCount(ctx context.Context) (int, error)

	// GetByIDs retrieves the questions with the given IDs.
	// IDs not present in the bank are silently omitted from the result.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Question, error)

	// GetByExam retrieves all questions of one exam, in blueprint order.
	GetByExam(ctx context.Context, examID string) ([]domain.Question, error)
}
