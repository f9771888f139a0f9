package review

import (
	"errors"
	"time"

	"github.com/openaws/openaws-api/internal/domain"
)

// Common errors
var (
	ErrEmptyQuestionID   = errors.New("question ID cannot be empty")
	ErrInvalidConfidence = errors.New("invalid confidence rating")
)

// Service defines the interface for review scheduling operations.
type Service interface {
	// Schedule computes the updated review queue after the learner rates a
	// question. Scheduling a question with no review history is first-time
	// scheduling, not an error.
	Schedule(
		queue []domain.ReviewItem,
		questionID string,
		wasCorrect bool,
		confidence Confidence,
		now time.Time,
	) ([]domain.ReviewItem, error)

	// Due returns the queue entries due at the given instant, most overdue
	// first.
	Due(queue []domain.ReviewItem, now time.Time) []domain.ReviewItem
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new review service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a new review service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// Schedule implements the Service interface.
func (s *defaultService) Schedule(
	queue []domain.ReviewItem,
	questionID string,
	wasCorrect bool,
	confidence Confidence,
	now time.Time,
) ([]domain.ReviewItem, error) {
	if questionID == "" {
		return nil, ErrEmptyQuestionID
	}

	if !confidence.IsValid() {
		return nil, ErrInvalidConfidence
	}

	return schedule(queue, questionID, wasCorrect, confidence, now, s.params), nil
}

// Due implements the Service interface.
func (s *defaultService) Due(queue []domain.ReviewItem, now time.Time) []domain.ReviewItem {
	return DueItems(queue, now)
}
