// Package badge evaluates achievement predicates over learner progress.
// Evaluation is a pure before/after comparison: the wall-clock hour is
// injected by the caller, never read here, so badge logic stays
// deterministic under test.
package badge

import "github.com/openaws/openaws-api/internal/domain"

// Achievement thresholds.
const (
	// CenturyQuestions is the answer total for the century badge.
	CenturyQuestions = 100

	// PerfectRun is the consecutive-correct count for the perfect-10 badge.
	PerfectRun = 10

	// StreakWeek is the streak length for the week-warrior badge.
	StreakWeek = 7

	// EarlyBirdBefore is the exclusive local-hour bound for early-bird.
	EarlyBirdBefore = 8

	// NightOwlAfter is the inclusive local-hour bound for night-owl.
	NightOwlAfter = 22

	// HalfwayPercent is the bank-coverage percentage for the halfway badge.
	HalfwayPercent = 50
)

// Evaluate computes the badges newly qualified by the transition from prev
// to next. Badges already earned in prev are never re-emitted, which makes
// evaluation idempotent. Every predicate runs on every call; several badges
// may qualify at once.
//
// totalQuestions is the size of the question bank, used by the coverage
// badges; localHour is the device-local hour of the evaluation (0-23).
func Evaluate(
	prev, next *domain.LearnerProgress,
	totalQuestions int,
	localHour int,
) []domain.BadgeID {
	var earned []domain.BadgeID

	award := func(id domain.BadgeID, qualified bool) {
		if qualified && !prev.HasBadge(id) {
			earned = append(earned, id)
		}
	}

	award(domain.BadgeCentury, next.QuestionsAnswered >= CenturyQuestions)

	allPracticed := len(next.DomainStats) > 0
	for _, stats := range next.DomainStats {
		if stats.Answered == 0 {
			allPracticed = false
			break
		}
	}
	award(domain.BadgeAllDomains, allPracticed)

	award(domain.BadgePerfectTen, next.ConsecutiveCorrect >= PerfectRun)
	award(domain.BadgeStreakWeek, next.Streak >= StreakWeek)
	award(domain.BadgeEarlyBird, localHour < EarlyBirdBefore)
	award(domain.BadgeNightOwl, localHour >= NightOwlAfter)

	if totalQuestions > 0 {
		seenPercent := float64(len(next.SeenQuestionIDs)) / float64(totalQuestions) * 100
		award(domain.BadgeHalfway, seenPercent >= HalfwayPercent)
		award(domain.BadgeCoverage, seenPercent >= 100)
	}

	return earned
}
