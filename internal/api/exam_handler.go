package api

import (
	"log/slog"
	"net/http"

	"github.com/openaws/openaws-api/internal/api/middleware"
	"github.com/openaws/openaws-api/internal/api/shared"
	"github.com/openaws/openaws-api/internal/platform/logger"
	"github.com/openaws/openaws-api/internal/service/progress"
)

// ExamHandler handles exam attempt HTTP requests.
type ExamHandler struct {
	progressService progress.ProgressService
	logger          *slog.Logger
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(
	progressService progress.ProgressService,
	log *slog.Logger,
) *ExamHandler {
	if log == nil {
		log = slog.Default()
	}

	return &ExamHandler{
		progressService: progressService,
		logger:          log.With(slog.String("component", "exam_handler")),
	}
}

// SubmitAttempt handles POST /exams/attempts requests. The full answer map is
// graded server-side and the attempt is persisted immutably.
func (h *ExamHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	var req ExamAttemptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	outcome, err := h.progressService.RecordExamAttempt(r.Context(), userID, progress.ExamSubmission{
		ExamID:      req.ExamID,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
		Answers:     req.Answers,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("exam attempt submitted",
		slog.String("user_id", userID.String()),
		slog.String("exam_id", req.ExamID),
		slog.Bool("passed", outcome.Passed))

	shared.RespondWithJSON(w, r, http.StatusCreated, struct {
		AttemptID  string               `json:"attempt_id"`
		Correct    int                  `json:"correct"`
		Total      int                  `json:"total"`
		Percentage int                  `json:"percentage"`
		Passed     bool                 `json:"passed"`
		Domains    map[string]domainRow `json:"domains"`
		NewBadges  []BadgeResponse      `json:"new_badges"`
	}{
		AttemptID:  outcome.AttemptID.String(),
		Correct:    outcome.Result.Correct,
		Total:      outcome.Result.Total,
		Percentage: outcome.Result.Percentage,
		Passed:     outcome.Passed,
		Domains:    domainBreakdownToResponse(outcome),
		NewBadges:  badgesToResponse(outcome.NewBadges),
	})
}

// ListAttempts handles GET /exams/attempts requests, newest attempt first.
func (h *ExamHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	attempts, err := h.progressService.ListExamAttempts(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]ExamAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		responses = append(responses, ExamAttemptResponse{
			ID:          a.ID.String(),
			ExamID:      a.ExamID,
			StartedAt:   a.StartedAt,
			CompletedAt: a.CompletedAt,
			Score:       a.Score,
			Total:       a.TotalQuestions,
			Passed:      a.Passed(),
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Attempts []ExamAttemptResponse `json:"attempts"`
	}{Attempts: responses})
}

type domainRow struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

func domainBreakdownToResponse(outcome *progress.ExamOutcome) map[string]domainRow {
	out := make(map[string]domainRow, len(outcome.Result.DomainBreakdown))
	for d, res := range outcome.Result.DomainBreakdown {
		out[string(d)] = domainRow{Correct: res.Correct, Total: res.Total}
	}
	return out
}
