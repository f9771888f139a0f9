package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Exam-attempt validation errors
var (
	ErrEmptyAttemptID      = errors.New("exam attempt ID cannot be empty")
	ErrEmptyAttemptUserID  = errors.New("exam attempt user ID cannot be empty")
	ErrEmptyAttemptExamID  = errors.New("exam attempt exam ID cannot be empty")
	ErrInvalidAttemptScore = errors.New("exam attempt score must be between 0 and 100")
	ErrNoAttemptQuestions  = errors.New("exam attempt must cover at least one question")
)

// PassingScore is the percentage a completed exam attempt must reach to
// count as a pass.
const PassingScore = 70

// ExamAttempt is one completed run through a full exam. Attempts are
// immutable once recorded; only the history grows.
type ExamAttempt struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"userId"`
	ExamID         string              `json:"examId"`
	StartedAt      time.Time           `json:"startedAt"`
	CompletedAt    time.Time           `json:"completedAt"`
	Answers        map[string][]string `json:"answers"` // question ID -> selected option IDs
	Score          int                 `json:"score"`   // percentage 0-100
	TotalQuestions int                 `json:"totalQuestions"`
}

// NewExamAttempt creates a completed exam attempt for a learner.
// Returns an error if validation fails.
func NewExamAttempt(
	userID uuid.UUID,
	examID string,
	startedAt, completedAt time.Time,
	answers map[string][]string,
	score, totalQuestions int,
) (*ExamAttempt, error) {
	attempt := &ExamAttempt{
		ID:             uuid.New(),
		UserID:         userID,
		ExamID:         examID,
		StartedAt:      startedAt,
		CompletedAt:    completedAt,
		Answers:        answers,
		Score:          score,
		TotalQuestions: totalQuestions,
	}

	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	return attempt, nil
}

// Validate checks if the ExamAttempt has valid data.
// Returns an error if any field fails validation.
func (a *ExamAttempt) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAttemptID
	}

	if a.UserID == uuid.Nil {
		return ErrEmptyAttemptUserID
	}

	if a.ExamID == "" {
		return ErrEmptyAttemptExamID
	}

	if a.Score < 0 || a.Score > 100 {
		return ErrInvalidAttemptScore
	}

	if a.TotalQuestions <= 0 {
		return ErrNoAttemptQuestions
	}

	return nil
}

// Passed reports whether the attempt reached the passing score.
func (a *ExamAttempt) Passed() bool {
	return a.Score >= PassingScore
}

// DomainResult is the per-domain slice of an exam result.
type DomainResult struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ExamResult is the aggregate outcome of grading one exam attempt.
// Every domain is present in the breakdown, even with zero questions.
type ExamResult struct {
	Correct         int                     `json:"correct"`
	Total           int                     `json:"total"`
	Percentage      int                     `json:"percentage"`
	DomainBreakdown map[Domain]DomainResult `json:"domainBreakdown"`
}
