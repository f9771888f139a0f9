package review

import (
	"testing"
	"time"

	"github.com/openaws/openaws-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextInterval(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()

	testCases := []struct {
		name             string
		previousInterval int
		wasCorrect       bool
		confidence       Confidence
		expected         int
	}{
		{
			name:             "incorrect resets to failure interval",
			previousInterval: 16,
			wasCorrect:       false,
			confidence:       ConfidenceConfident,
			expected:         1,
		},
		{
			name:             "guessed uses the flat interval",
			previousInterval: 16,
			wasCorrect:       true,
			confidence:       ConfidenceGuessed,
			expected:         2,
		},
		{
			name:             "unsure uses the flat interval",
			previousInterval: 16,
			wasCorrect:       true,
			confidence:       ConfidenceUnsure,
			expected:         2,
		},
		{
			name:             "confident doubles the previous interval",
			previousInterval: 2,
			wasCorrect:       true,
			confidence:       ConfidenceConfident,
			expected:         4,
		},
		{
			name:             "confident growth caps at the maximum",
			previousInterval: 16,
			wasCorrect:       true,
			confidence:       ConfidenceConfident,
			expected:         30,
		},
		{
			name:             "no history uses the initial interval as previous",
			previousInterval: 0,
			wasCorrect:       true,
			confidence:       ConfidenceConfident,
			expected:         2,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := nextInterval(tc.previousInterval, tc.wasCorrect, tc.confidence, params)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestScheduleReplacesExistingEntry(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	queue := []domain.ReviewItem{
		{QuestionID: "q1", NextReviewAt: now.AddDate(0, 0, -1), Interval: 4},
		{QuestionID: "q2", NextReviewAt: now.AddDate(0, 0, 3), Interval: 8},
	}

	updated, err := svc.Schedule(queue, "q1", true, ConfidenceConfident, now)
	require.NoError(t, err)

	// Still one live entry per question, with q1's replacement appended last.
	require.Len(t, updated, 2)
	item := updated[len(updated)-1]
	assert.Equal(t, "q1", item.QuestionID)
	assert.Equal(t, 8, item.Interval)
	assert.Equal(t, now.AddDate(0, 0, 8), item.NextReviewAt)

	// The input queue is untouched.
	assert.Equal(t, 4, queue[0].Interval)
}

func TestScheduleFirstTime(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	updated, err := svc.Schedule(nil, "q9", false, ConfidenceGuessed, now)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 1, updated[0].Interval)
	assert.Equal(t, now.AddDate(0, 0, 1), updated[0].NextReviewAt)
}

func TestScheduleValidation(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	now := time.Now().UTC()

	_, err := svc.Schedule(nil, "", true, ConfidenceConfident, now)
	assert.ErrorIs(t, err, ErrEmptyQuestionID)

	_, err = svc.Schedule(nil, "q1", true, Confidence("certain"), now)
	assert.ErrorIs(t, err, ErrInvalidConfidence)
}

func TestDueItems(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	queue := []domain.ReviewItem{
		{QuestionID: "future", NextReviewAt: now.Add(time.Hour)},
		{QuestionID: "overdue", NextReviewAt: now.AddDate(0, 0, -3)},
		{QuestionID: "exact", NextReviewAt: now},
		{QuestionID: "barely", NextReviewAt: now.Add(-time.Minute)},
	}

	due := DueItems(queue, now)
	require.Len(t, due, 3)

	// Most overdue first; an item due exactly now is included.
	assert.Equal(t, "overdue", due[0].QuestionID)
	assert.Equal(t, "barely", due[1].QuestionID)
	assert.Equal(t, "exact", due[2].QuestionID)
}

func TestDueItemsEmptyQueue(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DueItems(nil, time.Now().UTC()))
}
