package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openaws/openaws-api/internal/api/middleware"
	"github.com/openaws/openaws-api/internal/api/shared"
	"github.com/openaws/openaws-api/internal/domain/review"
	"github.com/openaws/openaws-api/internal/service/progress"
)

// ReviewHandler handles spaced-repetition review HTTP requests.
type ReviewHandler struct {
	progressService progress.ProgressService
	logger          *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(
	progressService progress.ProgressService,
	log *slog.Logger,
) *ReviewHandler {
	if log == nil {
		log = slog.Default()
	}

	return &ReviewHandler{
		progressService: progressService,
		logger:          log.With(slog.String("component", "review_handler")),
	}
}

// GetDueReviews handles GET /reviews/due requests. Items are returned most
// overdue first.
func (h *ReviewHandler) GetDueReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	items, err := h.progressService.DueReviews(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Items []ReviewItemResponse `json:"items"`
	}{Items: reviewItemsToResponse(items)})
}

// ScheduleReview handles POST /reviews/{questionID} requests. The learner
// rates their confidence after answering and the question is rescheduled.
func (h *ReviewHandler) ScheduleReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	questionID := chi.URLParam(r, "questionID")
	if questionID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Question ID is required")
		return
	}

	var req ScheduleReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.progressService.ScheduleReview(
		r.Context(), userID, questionID, req.WasCorrect, review.Confidence(req.Confidence))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("review scheduled",
		slog.String("user_id", userID.String()),
		slog.String("question_id", questionID),
		slog.Int("interval_days", item.Interval))

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewItemResponse{
		QuestionID:   item.QuestionID,
		NextReviewAt: item.NextReviewAt,
		IntervalDays: item.Interval,
	})
}
