package review

// Confidence is the learner's self-reported certainty at review time.
// It is used only to tune the next interval.
type Confidence string

// Possible confidence values
const (
	ConfidenceGuessed   Confidence = "guessed"
	ConfidenceUnsure    Confidence = "unsure"
	ConfidenceConfident Confidence = "confident"
)

// IsValid reports whether the confidence is one of the known values.
func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceGuessed, ConfidenceUnsure, ConfidenceConfident:
		return true
	default:
		return false
	}
}

// Params defines all configurable parameters for the review scheduler.
// The confidence-to-interval policy is a lookup table rather than branching
// logic so it stays auditable and easy to extend.
type Params struct {
	// FailureIntervalDays is the interval after an incorrect answer.
	FailureIntervalDays int

	// FixedIntervals maps confidence levels to a flat next interval.
	// Confidence levels absent from the table grow exponentially instead.
	FixedIntervals map[Confidence]int

	// GrowthFactor multiplies the previous interval for confident recalls.
	GrowthFactor int

	// MaxIntervalDays caps exponential growth.
	MaxIntervalDays int

	// InitialIntervalDays is the implicit previous interval for a question
	// with no review history.
	InitialIntervalDays int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		FailureIntervalDays: 1,

		// Low-certainty recalls come back quickly regardless of history.
		FixedIntervals: map[Confidence]int{
			ConfidenceGuessed: 2,
			ConfidenceUnsure:  2,
		},

		GrowthFactor:        2,
		MaxIntervalDays:     30,
		InitialIntervalDays: 1,
	}
}
