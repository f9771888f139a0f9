package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/mocks"
	"github.com/openaws/openaws-api/internal/service/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAttempt(t *testing.T) {
	t.Parallel()

	attemptID := uuid.New()
	service := &mocks.MockProgressService{
		RecordExamAttemptFn: func(
			ctx context.Context,
			id uuid.UUID,
			sub progress.ExamSubmission,
		) (*progress.ExamOutcome, error) {
			assert.Equal(t, "practice-1", sub.ExamID)
			return &progress.ExamOutcome{
				AttemptID: attemptID,
				Result: domain.ExamResult{
					Correct:    45,
					Total:      65,
					Percentage: 69,
					DomainBreakdown: map[domain.Domain]domain.DomainResult{
						domain.DomainTechnology: {Correct: 20, Total: 25},
					},
				},
				Passed: false,
			}, nil
		},
	}
	handler := NewExamHandler(service, nil)

	started := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	body, err := json.Marshal(ExamAttemptRequest{
		ExamID:      "practice-1",
		StartedAt:   started,
		CompletedAt: started.Add(time.Hour),
		Answers:     map[string][]string{"q1": {"a"}},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.SubmitAttempt(w,
		authedRequest(http.MethodPost, "/api/exams/attempts", body, uuid.New()))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		AttemptID  string `json:"attempt_id"`
		Percentage int    `json:"percentage"`
		Passed     bool   `json:"passed"`
		Domains    map[string]struct {
			Correct int `json:"correct"`
			Total   int `json:"total"`
		} `json:"domains"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, attemptID.String(), resp.AttemptID)
	assert.Equal(t, 69, resp.Percentage)
	assert.False(t, resp.Passed)
	assert.Equal(t, 20, resp.Domains["Technology"].Correct)
}

func TestSubmitAttemptValidation(t *testing.T) {
	t.Parallel()

	handler := NewExamHandler(&mocks.MockProgressService{}, nil)

	// Missing exam_id fails validation before the service is reached.
	body := []byte(`{"started_at":"2026-08-31T09:00:00Z",` +
		`"completed_at":"2026-08-31T10:00:00Z","answers":{}}`)

	w := httptest.NewRecorder()
	handler.SubmitAttempt(w,
		authedRequest(http.MethodPost, "/api/exams/attempts", body, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAttemptUnknownExam(t *testing.T) {
	t.Parallel()

	service := &mocks.MockProgressService{Err: progress.ErrExamNotFound}
	handler := NewExamHandler(service, nil)

	body := []byte(`{"exam_id":"nope","started_at":"2026-08-31T09:00:00Z",` +
		`"completed_at":"2026-08-31T10:00:00Z","answers":{}}`)

	w := httptest.NewRecorder()
	handler.SubmitAttempt(w,
		authedRequest(http.MethodPost, "/api/exams/attempts", body, uuid.New()))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAttempts(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	completed := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	service := &mocks.MockProgressService{
		ListExamAttemptsFn: func(ctx context.Context, id uuid.UUID) ([]domain.ExamAttempt, error) {
			return []domain.ExamAttempt{
				{
					ID:             uuid.New(),
					UserID:         id,
					ExamID:         "practice-1",
					StartedAt:      completed.Add(-time.Hour),
					CompletedAt:    completed,
					Score:          82,
					TotalQuestions: 65,
				},
			}, nil
		},
	}
	handler := NewExamHandler(service, nil)

	w := httptest.NewRecorder()
	handler.ListAttempts(w,
		authedRequest(http.MethodGet, "/api/exams/attempts", nil, userID))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Attempts []ExamAttemptResponse `json:"attempts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Attempts, 1)
	assert.Equal(t, 82, resp.Attempts[0].Score)
	assert.True(t, resp.Attempts[0].Passed)
}
