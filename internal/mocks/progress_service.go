package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/domain/review"
	"github.com/openaws/openaws-api/internal/service/progress"
)

// MockProgressService implements progress.ProgressService for handler tests.
// Each method delegates to the corresponding Fn when set and otherwise
// returns the zero value with Err.
type MockProgressService struct {
	GetStatsFn           func(ctx context.Context, userID uuid.UUID) (*progress.Stats, error)
	RecordAnswerFn       func(ctx context.Context, userID uuid.UUID, sub progress.AnswerSubmission) (*progress.AnswerResult, error)
	ScheduleReviewFn     func(ctx context.Context, userID uuid.UUID, questionID string, wasCorrect bool, confidence review.Confidence) (*domain.ReviewItem, error)
	DueReviewsFn         func(ctx context.Context, userID uuid.UUID) ([]domain.ReviewItem, error)
	IncorrectQuestionsFn func(ctx context.Context, userID uuid.UUID) ([]string, error)
	RecordExamAttemptFn  func(ctx context.Context, userID uuid.UUID, sub progress.ExamSubmission) (*progress.ExamOutcome, error)
	ListExamAttemptsFn   func(ctx context.Context, userID uuid.UUID) ([]domain.ExamAttempt, error)
	ResetProgressFn      func(ctx context.Context, userID uuid.UUID) (*domain.LearnerProgress, error)

	Err error
}

var _ progress.ProgressService = (*MockProgressService)(nil)

// GetStats implements progress.ProgressService.
func (m *MockProgressService) GetStats(
	ctx context.Context,
	userID uuid.UUID,
) (*progress.Stats, error) {
	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx, userID)
	}
	return nil, m.Err
}

// RecordAnswer implements progress.ProgressService.
func (m *MockProgressService) RecordAnswer(
	ctx context.Context,
	userID uuid.UUID,
	sub progress.AnswerSubmission,
) (*progress.AnswerResult, error) {
	if m.RecordAnswerFn != nil {
		return m.RecordAnswerFn(ctx, userID, sub)
	}
	return nil, m.Err
}

// ScheduleReview implements progress.ProgressService.
func (m *MockProgressService) ScheduleReview(
	ctx context.Context,
	userID uuid.UUID,
	questionID string,
	wasCorrect bool,
	confidence review.Confidence,
) (*domain.ReviewItem, error) {
	if m.ScheduleReviewFn != nil {
		return m.ScheduleReviewFn(ctx, userID, questionID, wasCorrect, confidence)
	}
	return nil, m.Err
}

// DueReviews implements progress.ProgressService.
func (m *MockProgressService) DueReviews(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.ReviewItem, error) {
	if m.DueReviewsFn != nil {
		return m.DueReviewsFn(ctx, userID)
	}
	return nil, m.Err
}

// IncorrectQuestions implements progress.ProgressService.
func (m *MockProgressService) IncorrectQuestions(
	ctx context.Context,
	userID uuid.UUID,
) ([]string, error) {
	if m.IncorrectQuestionsFn != nil {
		return m.IncorrectQuestionsFn(ctx, userID)
	}
	return nil, m.Err
}

// RecordExamAttempt implements progress.ProgressService.
func (m *MockProgressService) RecordExamAttempt(
	ctx context.Context,
	userID uuid.UUID,
	sub progress.ExamSubmission,
) (*progress.ExamOutcome, error) {
	if m.RecordExamAttemptFn != nil {
		return m.RecordExamAttemptFn(ctx, userID, sub)
	}
	return nil, m.Err
}

// ListExamAttempts implements progress.ProgressService.
func (m *MockProgressService) ListExamAttempts(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.ExamAttempt, error) {
	if m.ListExamAttemptsFn != nil {
		return m.ListExamAttemptsFn(ctx, userID)
	}
	return nil, m.Err
}

// ResetProgress implements progress.ProgressService.
func (m *MockProgressService) ResetProgress(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.LearnerProgress, error) {
	if m.ResetProgressFn != nil {
		return m.ResetProgressFn(ctx, userID)
	}
	return nil, m.Err
}
