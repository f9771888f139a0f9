package badge

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/openaws/openaws-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

// middayHour is a local hour that qualifies for neither time-of-day badge.
const middayHour = 12

func TestEvaluate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		setup          func(prev, next *domain.LearnerProgress)
		totalQuestions int
		localHour      int
		expected       []domain.BadgeID
	}{
		{
			name:           "fresh record earns nothing at midday",
			setup:          func(prev, next *domain.LearnerProgress) {},
			totalQuestions: 100,
			localHour:      middayHour,
			expected:       nil,
		},
		{
			name: "century at one hundred answered",
			setup: func(prev, next *domain.LearnerProgress) {
				next.QuestionsAnswered = CenturyQuestions
			},
			totalQuestions: 400,
			localHour:      middayHour,
			expected:       []domain.BadgeID{domain.BadgeCentury},
		},
		{
			name: "all domains once every domain has an answer",
			setup: func(prev, next *domain.LearnerProgress) {
				for _, d := range domain.AllDomains() {
					next.DomainStats[d] = domain.DomainStats{Answered: 1}
				}
			},
			totalQuestions: 400,
			localHour:      middayHour,
			expected:       []domain.BadgeID{domain.BadgeAllDomains},
		},
		{
			name: "perfect ten on a ten-answer run",
			setup: func(prev, next *domain.LearnerProgress) {
				next.ConsecutiveCorrect = PerfectRun
			},
			totalQuestions: 400,
			localHour:      middayHour,
			expected:       []domain.BadgeID{domain.BadgePerfectTen},
		},
		{
			name: "week warrior on a seven-day streak",
			setup: func(prev, next *domain.LearnerProgress) {
				next.Streak = StreakWeek
			},
			totalQuestions: 400,
			localHour:      middayHour,
			expected:       []domain.BadgeID{domain.BadgeStreakWeek},
		},
		{
			name:           "early bird before eight local",
			setup:          func(prev, next *domain.LearnerProgress) {},
			totalQuestions: 400,
			localHour:      7,
			expected:       []domain.BadgeID{domain.BadgeEarlyBird},
		},
		{
			name:           "night owl at ten pm local",
			setup:          func(prev, next *domain.LearnerProgress) {},
			totalQuestions: 400,
			localHour:      22,
			expected:       []domain.BadgeID{domain.BadgeNightOwl},
		},
		{
			name: "halfway at fifty percent coverage",
			setup: func(prev, next *domain.LearnerProgress) {
				next.SeenQuestionIDs = manyIDs(5)
			},
			totalQuestions: 10,
			localHour:      middayHour,
			expected:       []domain.BadgeID{domain.BadgeHalfway},
		},
		{
			name: "full coverage earns halfway and coverage together",
			setup: func(prev, next *domain.LearnerProgress) {
				next.SeenQuestionIDs = manyIDs(10)
			},
			totalQuestions: 10,
			localHour:      middayHour,
			expected:       []domain.BadgeID{domain.BadgeHalfway, domain.BadgeCoverage},
		},
		{
			name: "coverage badges never fire on an empty bank",
			setup: func(prev, next *domain.LearnerProgress) {
				next.SeenQuestionIDs = manyIDs(10)
			},
			totalQuestions: 0,
			localHour:      middayHour,
			expected:       nil,
		},
		{
			name: "already earned badges are not re-emitted",
			setup: func(prev, next *domain.LearnerProgress) {
				prev.AwardBadge(domain.BadgeCentury)
				next.QuestionsAnswered = CenturyQuestions + 50
			},
			totalQuestions: 400,
			localHour:      middayHour,
			expected:       nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userID := uuid.New()
			prev := domain.NewLearnerProgress(userID)
			next := domain.NewLearnerProgress(userID)
			tc.setup(prev, next)

			assert.Equal(t, tc.expected, Evaluate(prev, next, tc.totalQuestions, tc.localHour))
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	prev := domain.NewLearnerProgress(userID)
	next := domain.NewLearnerProgress(userID)
	next.QuestionsAnswered = CenturyQuestions
	next.ConsecutiveCorrect = PerfectRun

	first := Evaluate(prev, next, 400, middayHour)
	assert.ElementsMatch(t,
		[]domain.BadgeID{domain.BadgeCentury, domain.BadgePerfectTen}, first)

	// Once the awards are folded into the record, re-evaluating the same
	// transition produces nothing new.
	for _, id := range first {
		next.AwardBadge(id)
	}
	assert.Empty(t, Evaluate(next, next, 400, middayHour))
}

func manyIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("q%d", i))
	}
	return ids
}
