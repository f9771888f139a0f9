// Package streak derives the consecutive-study-day streak from the daily
// activity log. All functions are pure; callers supply the current date.
package streak

import (
	"time"

	"github.com/openaws/openaws-api/internal/domain"
)

// Params defines the configurable parameters for streak calculation.
type Params struct {
	// DailyGoal is the number of answers a day needs to count toward the streak.
	DailyGoal int

	// MaxLookbackDays bounds the backward walk so sparse histories never
	// trigger an unbounded scan.
	MaxLookbackDays int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		DailyGoal:       20,
		MaxLookbackDays: 365,
	}
}

// Compute walks backward day-by-day from today and counts consecutive days
// whose activity reached the daily goal.
//
// Today is a special case: a day still in progress has not had its chance to
// meet the goal yet, so a short today does not break the streak — the walk
// skips it and continues from yesterday. Any earlier day that falls short
// ends the count.
func Compute(history []domain.DailyProgress, today string, params *Params) int {
	byDate := make(map[string]int, len(history))
	for _, entry := range history {
		byDate[entry.Date] = entry.QuestionsAnswered
	}

	day, err := time.Parse(domain.DateLayout, today)
	if err != nil {
		return 0
	}

	streak := 0
	for i := 0; i < params.MaxLookbackDays; i++ {
		date := day.AddDate(0, 0, -i).Format(domain.DateLayout)

		if byDate[date] >= params.DailyGoal {
			streak++
			continue
		}

		if i == 0 {
			// Today is incomplete, not broken.
			continue
		}

		break
	}

	return streak
}

// RecordActivity increments today's entry in the daily log, appending a new
// entry if the date has not been seen, and trims the log to the retention
// window. Oldest entries are dropped first. The input slice is not modified.
func RecordActivity(history []domain.DailyProgress, date string) []domain.DailyProgress {
	updated := make([]domain.DailyProgress, 0, len(history)+1)

	found := false
	for _, entry := range history {
		if entry.Date == date {
			entry.QuestionsAnswered++
			found = true
		}
		updated = append(updated, entry)
	}

	if !found {
		updated = append(updated, domain.DailyProgress{Date: date, QuestionsAnswered: 1})
	}

	if len(updated) > domain.DailyProgressWindow {
		updated = updated[len(updated)-domain.DailyProgressWindow:]
	}

	return updated
}
