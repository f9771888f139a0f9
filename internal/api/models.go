package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// RecordAnswerRequest defines the payload for recording one answered question.
type RecordAnswerRequest struct {
	QuestionID        string   `json:"question_id"         validate:"required"`
	SelectedOptionIDs []string `json:"selected_option_ids" validate:"required,min=1"`
}

// ScheduleReviewRequest defines the payload for rating a review.
type ScheduleReviewRequest struct {
	WasCorrect bool   `json:"was_correct"`
	Confidence string `json:"confidence" validate:"required,oneof=guessed unsure confident"`
}

// ReviewItemResponse represents one scheduled review item.
type ReviewItemResponse struct {
	QuestionID   string    `json:"question_id"`
	NextReviewAt time.Time `json:"next_review_at"`
	IntervalDays int       `json:"interval_days"`
}

// ExamAttemptRequest defines the payload for submitting a completed exam.
type ExamAttemptRequest struct {
	ExamID      string              `json:"exam_id"      validate:"required"`
	StartedAt   time.Time           `json:"started_at"   validate:"required"`
	CompletedAt time.Time           `json:"completed_at" validate:"required"`
	Answers     map[string][]string `json:"answers"      validate:"required"`
}

// ExamAttemptResponse represents one completed exam attempt.
type ExamAttemptResponse struct {
	ID          string    `json:"id"`
	ExamID      string    `json:"exam_id"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Passed      bool      `json:"passed"`
}

// BadgeResponse represents one earned achievement.
type BadgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func badgesToResponse(badges []domain.Badge) []BadgeResponse {
	out := make([]BadgeResponse, 0, len(badges))
	for _, b := range badges {
		out = append(out, BadgeResponse{
			ID:          string(b.ID),
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
		})
	}
	return out
}

func reviewItemsToResponse(items []domain.ReviewItem) []ReviewItemResponse {
	out := make([]ReviewItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ReviewItemResponse{
			QuestionID:   item.QuestionID,
			NextReviewAt: item.NextReviewAt,
			IntervalDays: item.Interval,
		})
	}
	return out
}
