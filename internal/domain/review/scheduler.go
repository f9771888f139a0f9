// Package review implements the spaced-repetition scheduling policy for the
// question review queue: which interval a question earns after a review, and
// which queued items are currently due.
package review

import (
	"sort"
	"time"

	"github.com/openaws/openaws-api/internal/domain"
)

// nextInterval determines the new interval in days after a review.
//
// An incorrect answer always resets to the failure interval. Correct answers
// with low or medium confidence use the flat interval from the params table.
// Confident recalls double the previous interval, capped at the maximum.
// A question with no prior entry uses the initial interval as its previous
// interval, so first-time scheduling is never an error.
func nextInterval(
	previousInterval int,
	wasCorrect bool,
	confidence Confidence,
	params *Params,
) int {
	if !wasCorrect {
		return params.FailureIntervalDays
	}

	if interval, ok := params.FixedIntervals[confidence]; ok {
		return interval
	}

	if previousInterval < params.InitialIntervalDays {
		previousInterval = params.InitialIntervalDays
	}

	interval := previousInterval * params.GrowthFactor
	if interval > params.MaxIntervalDays {
		interval = params.MaxIntervalDays
	}

	return interval
}

// schedule computes the updated review queue after rating one question.
// The item for the question is replaced wholesale; the queue holds at most
// one live entry per question. The input queue is not modified.
func schedule(
	queue []domain.ReviewItem,
	questionID string,
	wasCorrect bool,
	confidence Confidence,
	now time.Time,
	params *Params,
) []domain.ReviewItem {
	previousInterval := params.InitialIntervalDays
	updated := make([]domain.ReviewItem, 0, len(queue)+1)

	for _, item := range queue {
		if item.QuestionID == questionID {
			previousInterval = item.Interval
			continue
		}
		updated = append(updated, item)
	}

	interval := nextInterval(previousInterval, wasCorrect, confidence, params)

	return append(updated, domain.ReviewItem{
		QuestionID:   questionID,
		NextReviewAt: now.AddDate(0, 0, interval),
		Interval:     interval,
	})
}

// DueItems returns the queue entries whose scheduled instant has passed,
// ordered by ascending NextReviewAt so the most overdue item comes first.
// The order is stable for deterministic sessions.
func DueItems(queue []domain.ReviewItem, now time.Time) []domain.ReviewItem {
	due := make([]domain.ReviewItem, 0, len(queue))
	for _, item := range queue {
		if !item.NextReviewAt.After(now) {
			due = append(due, item)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})

	return due
}
