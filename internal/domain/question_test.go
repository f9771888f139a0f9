package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() Question {
	return Question{
		ID:     "q1",
		ExamID: "practice-1",
		Prompt: "Which service stores objects?",
		Options: []Option{
			{ID: "a", Text: "S3"},
			{ID: "b", Text: "EC2"},
			{ID: "c", Text: "Route 53"},
		},
		CorrectOptionIDs: []string{"a"},
		Domain:           DomainTechnology,
	}
}

func TestQuestionValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(q *Question)
		expected error
	}{
		{
			name:     "valid question",
			mutate:   func(q *Question) {},
			expected: nil,
		},
		{
			name:     "empty ID",
			mutate:   func(q *Question) { q.ID = "" },
			expected: ErrQuestionIDEmpty,
		},
		{
			name:     "too few options",
			mutate:   func(q *Question) { q.Options = q.Options[:1] },
			expected: ErrQuestionNoOptions,
		},
		{
			name:     "no correct option",
			mutate:   func(q *Question) { q.CorrectOptionIDs = nil },
			expected: ErrQuestionNoCorrectOption,
		},
		{
			name:     "unknown domain",
			mutate:   func(q *Question) { q.Domain = Domain("Databases") },
			expected: ErrUnknownDomain,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q := validQuestion()
			tc.mutate(&q)

			err := q.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestIsCorrectAnswer(t *testing.T) {
	t.Parallel()

	multi := validQuestion()
	multi.CorrectOptionIDs = []string{"a", "b"}
	multi.MultiSelect = true

	testCases := []struct {
		name     string
		question Question
		selected []string
		expected bool
	}{
		{
			name:     "single select exact match",
			question: validQuestion(),
			selected: []string{"a"},
			expected: true,
		},
		{
			name:     "single select wrong option",
			question: validQuestion(),
			selected: []string{"b"},
			expected: false,
		},
		{
			name:     "multi select order irrelevant",
			question: multi,
			selected: []string{"b", "a"},
			expected: true,
		},
		{
			name:     "multi select partial is incorrect",
			question: multi,
			selected: []string{"a"},
			expected: false,
		},
		{
			name:     "multi select superset is incorrect",
			question: multi,
			selected: []string{"a", "b", "c"},
			expected: false,
		},
		{
			name:     "empty selection is incorrect",
			question: validQuestion(),
			selected: nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.question.IsCorrectAnswer(tc.selected))
		})
	}
}

func TestDomainIsValid(t *testing.T) {
	t.Parallel()

	for _, d := range AllDomains() {
		assert.True(t, d.IsValid(), "domain %q", d)
	}
	assert.False(t, Domain("Storage").IsValid())
	assert.False(t, Domain("").IsValid())
}
