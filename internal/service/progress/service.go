// Package progress implements the learner progress engine: it turns answer
// and review-rating events into a new canonical LearnerProgress record, and
// aggregates completed exam attempts.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/domain/review"
)

// XP awards per answer event. XP only ever increases; the level is derived
// from the running total.
const (
	XPBase        = 1 // every answered question
	XPCorrect     = 1 // added when the answer is correct
	XPReviewBonus = 2 // added when the answer resolves a due review item
)

// AnswerSubmission is one answered question from a practice or review session.
type AnswerSubmission struct {
	QuestionID        string   `json:"questionId"`
	SelectedOptionIDs []string `json:"selectedOptionIds"`
}

// AnswerResult reports the outcome of recording one answer.
type AnswerResult struct {
	Correct          bool                    `json:"correct"`
	CorrectOptionIDs []string                `json:"correctOptionIds"`
	XPGained         int                     `json:"xpGained"`
	NewBadges        []domain.Badge          `json:"newBadges"`
	Progress         *domain.LearnerProgress `json:"progress"`
}

// ExamSubmission is a completed run through a full exam.
type ExamSubmission struct {
	ExamID      string              `json:"examId"`
	StartedAt   time.Time           `json:"startedAt"`
	CompletedAt time.Time           `json:"completedAt"`
	Answers     map[string][]string `json:"answers"` // question ID -> selected option IDs
}

// ExamOutcome reports the graded result of an exam submission.
type ExamOutcome struct {
	AttemptID uuid.UUID         `json:"attemptId"`
	Result    domain.ExamResult `json:"result"`
	Passed    bool              `json:"passed"`
	NewBadges []domain.Badge    `json:"newBadges"`
}

// Stats is the derived read-model of a learner's progress record.
type Stats struct {
	Progress         *domain.LearnerProgress `json:"progress"`
	Accuracy         float64                 `json:"accuracy"` // percentage, 0 when nothing answered
	XPInCurrentLevel int                     `json:"xpInCurrentLevel"`
	XPForNextLevel   int                     `json:"xpForNextLevel"`
	DueReviewCount   int                     `json:"dueReviewCount"`
}

// ProgressService exposes the engine's operations. Each mutation is a
// serialized read-modify-write of the learner's single progress record.
type ProgressService interface {
	// GetStats returns the derived stats view of the learner's record.
	GetStats(ctx context.Context, userID uuid.UUID) (*Stats, error)

	// RecordAnswer grades one answered question against the bank, folds it
	// into the progress record, and reports newly earned badges exactly once.
	RecordAnswer(ctx context.Context, userID uuid.UUID, sub AnswerSubmission) (*AnswerResult, error)

	// ScheduleReview reschedules a question after the learner rates their
	// confidence. First-time scheduling is not an error.
	ScheduleReview(
		ctx context.Context,
		userID uuid.UUID,
		questionID string,
		wasCorrect bool,
		confidence review.Confidence,
	) (*domain.ReviewItem, error)

	// DueReviews returns the review-queue entries due now, most overdue first.
	DueReviews(ctx context.Context, userID uuid.UUID) ([]domain.ReviewItem, error)

	// IncorrectQuestions returns the IDs currently answered incorrectly and
	// not yet corrected, so a session can target previously missed questions.
	IncorrectQuestions(ctx context.Context, userID uuid.UUID) ([]string, error)

	// RecordExamAttempt grades a completed exam, persists the immutable
	// attempt, and awards exam badges.
	RecordExamAttempt(ctx context.Context, userID uuid.UUID, sub ExamSubmission) (*ExamOutcome, error)

	// ListExamAttempts returns the learner's attempt history, newest first.
	ListExamAttempts(ctx context.Context, userID uuid.UUID) ([]domain.ExamAttempt, error)

	// ResetProgress replaces the learner's record with all-zero defaults.
	ResetProgress(ctx context.Context, userID uuid.UUID) (*domain.LearnerProgress, error)
}

// Common error types for ProgressService
var (
	// ErrQuestionNotFound indicates the submitted question is not in the bank.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrExamNotFound indicates the exam has no questions in the bank.
	ErrExamNotFound = errors.New("exam not found")

	// ErrInvalidSubmission indicates a malformed submission; nothing was
	// recorded and the store was never touched.
	ErrInvalidSubmission = errors.New("invalid submission")
)

// ServiceError wraps errors from the progress service with the operation
// that failed, so consumers can differentiate with errors.As instead of
// string matching.
type ServiceError struct {
	Operation string // e.g. "record_answer", "schedule_review"
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s operation failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(operation string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Err: err}
}
