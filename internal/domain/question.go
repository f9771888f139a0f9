package domain

import "errors"

// Question-specific validation errors
var (
	// ErrQuestionIDEmpty is returned when a question ID is empty.
	ErrQuestionIDEmpty = errors.New("question ID cannot be empty")

	// ErrQuestionNoOptions is returned when a question has no answer options.
	ErrQuestionNoOptions = errors.New("question must have at least two options")

	// ErrQuestionNoCorrectOption is returned when a question has no correct option.
	ErrQuestionNoCorrectOption = errors.New("question must have at least one correct option")

	// ErrUnknownDomain is returned when a domain is not one of the four exam domains.
	ErrUnknownDomain = errors.New("unknown exam domain")
)

// Domain identifies one of the fixed exam domains a question belongs to.
type Domain string

// The four domains of the exam blueprint. The set is closed: every question
// and every per-domain tally uses exactly these values.
const (
	DomainCloudConcepts      Domain = "Cloud Concepts"
	DomainSecurityCompliance Domain = "Security & Compliance"
	DomainTechnology         Domain = "Technology"
	DomainBillingPricing     Domain = "Billing & Pricing"
)

// AllDomains returns the closed set of exam domains in blueprint order.
func AllDomains() []Domain {
	return []Domain{
		DomainCloudConcepts,
		DomainSecurityCompliance,
		DomainTechnology,
		DomainBillingPricing,
	}
}

// IsValid reports whether d is one of the four exam domains.
func (d Domain) IsValid() bool {
	switch d {
	case DomainCloudConcepts, DomainSecurityCompliance, DomainTechnology, DomainBillingPricing:
		return true
	default:
		return false
	}
}

// Option is a single answer choice on a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question represents one question of the static question bank.
// MultiSelect questions have more than one correct option; an answer is
// correct only when the selected set equals the correct set exactly.
type Question struct {
	ID               string   `json:"id"`
	ExamID           string   `json:"examId"`
	Index            int      `json:"index"`
	Prompt           string   `json:"prompt"`
	Options          []Option `json:"options"`
	CorrectOptionIDs []string `json:"correctOptionIds"`
	MultiSelect      bool     `json:"multiSelect"`
	Domain           Domain   `json:"domain"`
}

// Validate checks if the Question has valid data.
// Returns an error if any field fails validation.
func (q *Question) Validate() error {
	if q.ID == "" {
		return ErrQuestionIDEmpty
	}

	if len(q.Options) < 2 {
		return ErrQuestionNoOptions
	}

	if len(q.CorrectOptionIDs) == 0 {
		return ErrQuestionNoCorrectOption
	}

	if !q.Domain.IsValid() {
		return ErrUnknownDomain
	}

	return nil
}

// IsCorrectAnswer reports whether the selected option IDs match the question's
// correct option set exactly: same size, same members, order irrelevant.
// Partial credit is never awarded.
func (q *Question) IsCorrectAnswer(selected []string) bool {
	if len(selected) != len(q.CorrectOptionIDs) {
		return false
	}

	correct := make(map[string]bool, len(q.CorrectOptionIDs))
	for _, id := range q.CorrectOptionIDs {
		correct[id] = true
	}

	for _, id := range selected {
		if !correct[id] {
			return false
		}
	}

	return true
}
