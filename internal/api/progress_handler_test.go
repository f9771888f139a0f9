package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/api/shared"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/mocks"
	"github.com/openaws/openaws-api/internal/service/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authedRequest builds a request whose context carries the authenticated
// user ID, as the auth middleware would.
func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func TestGetProgress(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	record := domain.NewLearnerProgress(userID)
	record.XP = 42

	service := &mocks.MockProgressService{
		GetStatsFn: func(ctx context.Context, id uuid.UUID) (*progress.Stats, error) {
			assert.Equal(t, userID, id)
			return &progress.Stats{
				Progress:         record,
				Accuracy:         75,
				XPInCurrentLevel: 42,
				XPForNextLevel:   domain.XPPerLevel,
			}, nil
		},
	}
	handler := NewProgressHandler(service, nil)

	w := httptest.NewRecorder()
	handler.GetProgress(w, authedRequest(http.MethodGet, "/api/progress", nil, userID))

	require.Equal(t, http.StatusOK, w.Code)

	var resp progress.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 75.0, resp.Accuracy)
	assert.Equal(t, 42, resp.Progress.XP)
}

func TestGetProgressUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewProgressHandler(&mocks.MockProgressService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	handler.GetProgress(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecordAnswerHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	record := domain.NewLearnerProgress(userID)
	record.XP = 2
	record.Streak = 3

	service := &mocks.MockProgressService{
		RecordAnswerFn: func(
			ctx context.Context,
			id uuid.UUID,
			sub progress.AnswerSubmission,
		) (*progress.AnswerResult, error) {
			assert.Equal(t, "q1", sub.QuestionID)
			assert.Equal(t, []string{"a"}, sub.SelectedOptionIDs)
			return &progress.AnswerResult{
				Correct:          true,
				CorrectOptionIDs: []string{"a"},
				XPGained:         2,
				NewBadges:        []domain.Badge{domain.Badges[domain.BadgeEarlyBird]},
				Progress:         record,
			}, nil
		},
	}
	handler := NewProgressHandler(service, nil)

	body, err := json.Marshal(RecordAnswerRequest{
		QuestionID:        "q1",
		SelectedOptionIDs: []string{"a"},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.RecordAnswer(w, authedRequest(http.MethodPost, "/api/progress/answers", body, userID))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Correct   bool            `json:"correct"`
		XPGained  int             `json:"xp_gained"`
		NewBadges []BadgeResponse `json:"new_badges"`
		Streak    int             `json:"streak"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Correct)
	assert.Equal(t, 2, resp.XPGained)
	assert.Equal(t, 3, resp.Streak)
	require.Len(t, resp.NewBadges, 1)
	assert.Equal(t, string(domain.BadgeEarlyBird), resp.NewBadges[0].ID)
}

func TestRecordAnswerHandlerValidation(t *testing.T) {
	t.Parallel()

	handler := NewProgressHandler(&mocks.MockProgressService{}, nil)

	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: "{nope"},
		{name: "missing question ID", body: `{"selected_option_ids":["a"]}`},
		{name: "empty selection", body: `{"question_id":"q1","selected_option_ids":[]}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			req := authedRequest(
				http.MethodPost, "/api/progress/answers", []byte(tc.body), uuid.New())
			handler.RecordAnswer(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRecordAnswerHandlerQuestionNotFound(t *testing.T) {
	t.Parallel()

	service := &mocks.MockProgressService{Err: progress.ErrQuestionNotFound}
	handler := NewProgressHandler(service, nil)

	body := []byte(`{"question_id":"missing","selected_option_ids":["a"]}`)
	w := httptest.NewRecorder()
	handler.RecordAnswer(w,
		authedRequest(http.MethodPost, "/api/progress/answers", body, uuid.New()))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncorrectQuestions(t *testing.T) {
	t.Parallel()

	service := &mocks.MockProgressService{
		IncorrectQuestionsFn: func(ctx context.Context, id uuid.UUID) ([]string, error) {
			return []string{"q2", "q7"}, nil
		},
	}
	handler := NewProgressHandler(service, nil)

	w := httptest.NewRecorder()
	handler.GetIncorrectQuestions(w,
		authedRequest(http.MethodGet, "/api/progress/incorrect", nil, uuid.New()))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		QuestionIDs []string `json:"question_ids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"q2", "q7"}, resp.QuestionIDs)
}

func TestResetProgressHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	service := &mocks.MockProgressService{
		ResetProgressFn: func(ctx context.Context, id uuid.UUID) (*domain.LearnerProgress, error) {
			return domain.NewLearnerProgress(id), nil
		},
	}
	handler := NewProgressHandler(service, nil)

	w := httptest.NewRecorder()
	handler.ResetProgress(w,
		authedRequest(http.MethodPost, "/api/progress/reset", nil, userID))

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.LearnerProgress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, 0, resp.XP)
}
