package progress

import (
	"math"

	"github.com/openaws/openaws-api/internal/domain"
)

// Aggregate grades a completed exam: each question counts as correct only
// when the learner's selected option set equals the correct set exactly.
// Partial credit is never awarded; extra or missing selections on a
// multi-select question both count as wrong, as does an unanswered question.
//
// The per-domain breakdown always contains all four domains, even when the
// exam had no questions in one of them.
func Aggregate(
	questions []domain.Question,
	answers map[string][]string,
) domain.ExamResult {
	breakdown := make(map[domain.Domain]domain.DomainResult, len(domain.AllDomains()))
	for _, d := range domain.AllDomains() {
		breakdown[d] = domain.DomainResult{}
	}

	correct := 0
	for _, q := range questions {
		slot := breakdown[q.Domain]
		slot.Total++

		if q.IsCorrectAnswer(answers[q.ID]) {
			correct++
			slot.Correct++
		}

		breakdown[q.Domain] = slot
	}

	percentage := 0
	if len(questions) > 0 {
		percentage = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	}

	return domain.ExamResult{
		Correct:         correct,
		Total:           len(questions),
		Percentage:      percentage,
		DomainBreakdown: breakdown,
	}
}
