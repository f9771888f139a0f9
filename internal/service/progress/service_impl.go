package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/domain/badge"
	"github.com/openaws/openaws-api/internal/domain/review"
	"github.com/openaws/openaws-api/internal/domain/streak"
	"github.com/openaws/openaws-api/internal/platform/clock"
	"github.com/openaws/openaws-api/internal/platform/logger"
	"github.com/openaws/openaws-api/internal/store"
)

// Verify interface compliance at compile time
var _ ProgressService = (*progressService)(nil)

// progressService implements the ProgressService interface.
//
// Every mutation follows the same discipline: lock the learner, load the
// latest snapshot, compute a complete new snapshot on a clone, save it with
// one atomic replace. The per-learner mutex serializes answer events fired
// in rapid succession from overlapping UI interactions; a failed save leaves
// the stored record untouched.
type progressService struct {
	progressStore store.ProgressStore
	questionStore store.QuestionStore
	attemptStore  store.AttemptStore
	reviewSvc     review.Service
	streakParams  *streak.Params
	clock         clock.Clock
	logger        *slog.Logger

	locks sync.Map // uuid.UUID -> *sync.Mutex
}

// NewProgressService creates a new ProgressService implementation.
func NewProgressService(
	progressStore store.ProgressStore,
	questionStore store.QuestionStore,
	attemptStore store.AttemptStore,
	reviewSvc review.Service,
	streakParams *streak.Params,
	clk clock.Clock,
	log *slog.Logger,
) ProgressService {
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	if questionStore == nil {
		panic("questionStore cannot be nil")
	}
	if attemptStore == nil {
		panic("attemptStore cannot be nil")
	}
	if reviewSvc == nil {
		reviewSvc = review.NewDefaultService()
	}
	if streakParams == nil {
		streakParams = streak.NewDefaultParams()
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	if log == nil {
		log = slog.Default()
	}

	return &progressService{
		progressStore: progressStore,
		questionStore: questionStore,
		attemptStore:  attemptStore,
		reviewSvc:     reviewSvc,
		streakParams:  streakParams,
		clock:         clk,
		logger:        log.With(slog.String("component", "progress_service")),
	}
}

// lockFor returns the mutex serializing mutations of one learner's record.
func (s *progressService) lockFor(userID uuid.UUID) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// loadOrDefault reads the learner's record, falling back to all-zero
// defaults when none has been saved yet.
func (s *progressService) loadOrDefault(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.LearnerProgress, error) {
	progress, err := s.progressStore.Get(ctx, userID)
	if errors.Is(err, store.ErrProgressNotFound) {
		return domain.NewLearnerProgress(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// GetStats implements ProgressService.GetStats.
func (s *progressService) GetStats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	progress, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, newServiceError("get_stats", err)
	}

	accuracy := 0.0
	if progress.QuestionsAnswered > 0 {
		accuracy = float64(progress.CorrectCount) / float64(progress.QuestionsAnswered) * 100
	}

	return &Stats{
		Progress:         progress,
		Accuracy:         accuracy,
		XPInCurrentLevel: domain.XPInCurrentLevel(progress.XP),
		XPForNextLevel:   domain.XPPerLevel,
		DueReviewCount:   len(s.reviewSvc.Due(progress.ReviewQueue, s.clock.Now())),
	}, nil
}

// RecordAnswer implements ProgressService.RecordAnswer.
func (s *progressService) RecordAnswer(
	ctx context.Context,
	userID uuid.UUID,
	sub AnswerSubmission,
) (*AnswerResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Boundary validation: nothing past this point rejects input, and the
	// store is never touched for a malformed submission.
	if sub.QuestionID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubmission, domain.ErrQuestionIDEmpty)
	}
	if len(sub.SelectedOptionIDs) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubmission, domain.ErrEmptyAnswer)
	}

	questions, err := s.questionStore.GetByIDs(ctx, []string{sub.QuestionID})
	if err != nil {
		return nil, newServiceError("record_answer", err)
	}
	if len(questions) == 0 {
		return nil, ErrQuestionNotFound
	}
	question := questions[0]

	totalQuestions, err := s.questionStore.TotalCount(ctx)
	if err != nil {
		return nil, newServiceError("record_answer", err)
	}

	isCorrect := question.IsCorrectAnswer(sub.SelectedOptionIDs)

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	prev, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, newServiceError("record_answer", err)
	}

	next := prev.Clone()
	now := s.clock.Now()
	today := s.clock.Today()

	// An answer earns the review bonus when it resolves an item that was
	// due at the moment it was answered.
	reviewBonus := false
	for _, item := range next.ReviewQueue {
		if item.QuestionID == sub.QuestionID && !item.NextReviewAt.After(now) {
			reviewBonus = true
			break
		}
	}

	xpGained := XPBase
	if isCorrect {
		xpGained += XPCorrect
	}
	if reviewBonus {
		xpGained += XPReviewBonus
	}
	next.XP += xpGained
	next.Level = domain.LevelForXP(next.XP)

	if isCorrect {
		next.ClearIncorrect(sub.QuestionID)
		next.ConsecutiveCorrect++
	} else {
		next.MarkIncorrect(sub.QuestionID)
		next.ConsecutiveCorrect = 0
	}

	next.DailyProgress = streak.RecordActivity(next.DailyProgress, today)
	next.Streak = streak.Compute(next.DailyProgress, today, s.streakParams)
	next.LastStudyDate = today

	stats := next.DomainStats[question.Domain]
	stats.Answered++
	if isCorrect {
		stats.Correct++
	}
	next.DomainStats[question.Domain] = stats

	next.QuestionsAnswered++
	if isCorrect {
		next.CorrectCount++
	}

	next.MarkSeen(sub.QuestionID)

	newBadges := s.awardBadges(next,
		badge.Evaluate(prev, next, totalQuestions, s.clock.LocalHour()))

	if err := s.progressStore.Save(ctx, next); err != nil {
		return nil, newServiceError("record_answer", err)
	}

	log.Debug("recorded answer",
		slog.String("user_id", userID.String()),
		slog.String("question_id", sub.QuestionID),
		slog.Bool("correct", isCorrect),
		slog.Int("xp_gained", xpGained),
		slog.Int("new_badges", len(newBadges)))

	return &AnswerResult{
		Correct:          isCorrect,
		CorrectOptionIDs: question.CorrectOptionIDs,
		XPGained:         xpGained,
		NewBadges:        newBadges,
		Progress:         next,
	}, nil
}

// awardBadges folds newly qualified badge IDs into the record and returns
// their catalog metadata, preserving award order.
func (s *progressService) awardBadges(
	progress *domain.LearnerProgress,
	ids []domain.BadgeID,
) []domain.Badge {
	badges := make([]domain.Badge, 0, len(ids))
	for _, id := range ids {
		if !progress.AwardBadge(id) {
			continue
		}
		meta, err := domain.GetBadge(id)
		if err != nil {
			s.logger.Warn("evaluator produced badge outside catalog",
				slog.String("badge_id", string(id)))
			continue
		}
		badges = append(badges, meta)
	}
	return badges
}

// ScheduleReview implements ProgressService.ScheduleReview.
func (s *progressService) ScheduleReview(
	ctx context.Context,
	userID uuid.UUID,
	questionID string,
	wasCorrect bool,
	confidence review.Confidence,
) (*domain.ReviewItem, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	progress, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, newServiceError("schedule_review", err)
	}

	next := progress.Clone()
	queue, err := s.reviewSvc.Schedule(
		next.ReviewQueue, questionID, wasCorrect, confidence, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}
	next.ReviewQueue = queue

	if err := s.progressStore.Save(ctx, next); err != nil {
		return nil, newServiceError("schedule_review", err)
	}

	// Schedule appends the replacement item last.
	item := queue[len(queue)-1]
	return &item, nil
}

// DueReviews implements ProgressService.DueReviews.
// Read-only: it observes one consistent snapshot and takes no lock.
func (s *progressService) DueReviews(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.ReviewItem, error) {
	progress, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, newServiceError("due_reviews", err)
	}

	return s.reviewSvc.Due(progress.ReviewQueue, s.clock.Now()), nil
}

// IncorrectQuestions implements ProgressService.IncorrectQuestions.
func (s *progressService) IncorrectQuestions(
	ctx context.Context,
	userID uuid.UUID,
) ([]string, error) {
	progress, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, newServiceError("incorrect_questions", err)
	}

	return append([]string{}, progress.IncorrectQuestionIDs...), nil
}

// RecordExamAttempt implements ProgressService.RecordExamAttempt.
func (s *progressService) RecordExamAttempt(
	ctx context.Context,
	userID uuid.UUID,
	sub ExamSubmission,
) (*ExamOutcome, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if sub.ExamID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubmission, domain.ErrEmptyAttemptExamID)
	}

	questions, err := s.questionStore.GetByExam(ctx, sub.ExamID)
	if err != nil {
		return nil, newServiceError("record_exam_attempt", err)
	}
	if len(questions) == 0 {
		return nil, ErrExamNotFound
	}

	result := Aggregate(questions, sub.Answers)

	attempt, err := domain.NewExamAttempt(
		userID, sub.ExamID, sub.StartedAt, sub.CompletedAt,
		sub.Answers, result.Percentage, result.Total)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}

	if err := s.attemptStore.Create(ctx, attempt); err != nil {
		return nil, newServiceError("record_exam_attempt", err)
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	prev, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, newServiceError("record_exam_attempt", err)
	}

	next := prev.Clone()
	earned := []domain.BadgeID{domain.BadgeFirstExam}
	if attempt.Passed() {
		earned = append(earned, domain.BadgePassingScore)
	}
	newBadges := s.awardBadges(next, earned)

	if len(newBadges) > 0 {
		if err := s.progressStore.Save(ctx, next); err != nil {
			return nil, newServiceError("record_exam_attempt", err)
		}
	}

	log.Info("recorded exam attempt",
		slog.String("user_id", userID.String()),
		slog.String("exam_id", sub.ExamID),
		slog.Int("percentage", result.Percentage),
		slog.Bool("passed", attempt.Passed()))

	return &ExamOutcome{
		AttemptID: attempt.ID,
		Result:    result,
		Passed:    attempt.Passed(),
		NewBadges: newBadges,
	}, nil
}

// ListExamAttempts implements ProgressService.ListExamAttempts.
func (s *progressService) ListExamAttempts(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.ExamAttempt, error) {
	attempts, err := s.attemptStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, newServiceError("list_exam_attempts", err)
	}
	return attempts, nil
}

// ResetProgress implements ProgressService.ResetProgress.
func (s *progressService) ResetProgress(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.LearnerProgress, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	fresh := domain.NewLearnerProgress(userID)
	if err := s.progressStore.Save(ctx, fresh); err != nil {
		return nil, newServiceError("reset_progress", err)
	}

	s.logger.Info("progress reset", slog.String("user_id", userID.String()))
	return fresh, nil
}
