package api

import (
	"log/slog"
	"net/http"

	"github.com/openaws/openaws-api/internal/api/middleware"
	"github.com/openaws/openaws-api/internal/api/shared"
	"github.com/openaws/openaws-api/internal/platform/logger"
	"github.com/openaws/openaws-api/internal/service/progress"
)

// ProgressHandler handles learner-progress HTTP requests.
type ProgressHandler struct {
	progressService progress.ProgressService
	logger          *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(
	progressService progress.ProgressService,
	log *slog.Logger,
) *ProgressHandler {
	if log == nil {
		log = slog.Default()
	}

	return &ProgressHandler{
		progressService: progressService,
		logger:          log.With(slog.String("component", "progress_handler")),
	}
}

// GetProgress handles GET /progress requests.
// It returns the derived stats view of the learner's record.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	stats, err := h.progressService.GetStats(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// RecordAnswer handles POST /progress/answers requests.
// It grades the answer, folds it into the record, and reports newly earned
// badges exactly once so the client can surface each notification once.
func (h *ProgressHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	var req RecordAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.progressService.RecordAnswer(r.Context(), userID, progress.AnswerSubmission{
		QuestionID:        req.QuestionID,
		SelectedOptionIDs: req.SelectedOptionIDs,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("answer recorded",
		slog.String("user_id", userID.String()),
		slog.String("question_id", req.QuestionID),
		slog.Bool("correct", result.Correct))

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Correct          bool            `json:"correct"`
		CorrectOptionIDs []string        `json:"correct_option_ids"`
		XPGained         int             `json:"xp_gained"`
		NewBadges        []BadgeResponse `json:"new_badges"`
		XP               int             `json:"xp"`
		Level            int             `json:"level"`
		Streak           int             `json:"streak"`
	}{
		Correct:          result.Correct,
		CorrectOptionIDs: result.CorrectOptionIDs,
		XPGained:         result.XPGained,
		NewBadges:        badgesToResponse(result.NewBadges),
		XP:               result.Progress.XP,
		Level:            result.Progress.Level,
		Streak:           result.Progress.Streak,
	})
}

// GetIncorrectQuestions handles GET /progress/incorrect requests.
func (h *ProgressHandler) GetIncorrectQuestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	ids, err := h.progressService.IncorrectQuestions(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		QuestionIDs []string `json:"question_ids"`
	}{QuestionIDs: ids})
}

// ResetProgress handles POST /progress/reset requests.
func (h *ProgressHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	fresh, err := h.progressService.ResetProgress(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Info("progress reset", slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, fresh)
}
