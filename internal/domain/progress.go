package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Progress-specific validation errors
var (
	ErrEmptyProgressUserID  = errors.New("learner progress user ID cannot be empty")
	ErrNegativeCounter      = errors.New("progress counters cannot be negative")
	ErrCorrectExceedsTotal  = errors.New("correct count cannot exceed questions answered")
	ErrInvalidProgressLevel = errors.New("level is inconsistent with XP")
)

// Leveling and history constants for the learner progress record.
const (
	// XPPerLevel is the amount of XP that spans one level.
	XPPerLevel = 100

	// DailyProgressWindow is the number of daily activity entries retained.
	// The log is a rolling window, not an archive: older entries are dropped.
	DailyProgressWindow = 30

	// DateLayout is the calendar-date encoding used throughout the progress
	// record. Dates are compared lexically, so the layout must sort naturally.
	DateLayout = "2006-01-02"
)

// DomainStats tallies answered and correct counts for a single exam domain.
type DomainStats struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// DailyProgress records how many questions were answered on one calendar day.
type DailyProgress struct {
	Date              string `json:"date"`
	QuestionsAnswered int    `json:"questionsAnswered"`
}

// ReviewItem schedules one question for spaced-repetition review.
// A queue holds at most one item per question; rescheduling replaces it.
type ReviewItem struct {
	QuestionID   string    `json:"questionId"`
	NextReviewAt time.Time `json:"nextReviewAt"`
	Interval     int       `json:"interval"` // Current interval in days
}

// LearnerProgress is the canonical per-learner study record. It is mutated
// only by the progress service, as a complete read-modify-write snapshot;
// nothing else writes to it. Field names are stable because the record is
// serialized to JSON and read back across sessions and devices.
type LearnerProgress struct {
	UserID               uuid.UUID              `json:"userId"`
	QuestionsAnswered    int                    `json:"questionsAnswered"`
	CorrectCount         int                    `json:"correctCount"`
	DomainStats          map[Domain]DomainStats `json:"domainStats"`
	Streak               int                    `json:"streak"`
	LastStudyDate        string                 `json:"lastStudyDate,omitempty"`
	XP                   int                    `json:"xp"`
	Level                int                    `json:"level"`
	SeenQuestionIDs      []string               `json:"seenQuestionIds"`
	IncorrectQuestionIDs []string               `json:"incorrectQuestionIds"`
	ReviewQueue          []ReviewItem           `json:"reviewQueue"`
	EarnedBadges         []BadgeID              `json:"earnedBadges"`
	ConsecutiveCorrect   int                    `json:"consecutiveCorrect"`
	DailyProgress        []DailyProgress        `json:"dailyProgress"`
}

// NewLearnerProgress creates an all-zero progress record for a learner.
// Every domain is present in the stats map from the start, even at zero.
func NewLearnerProgress(userID uuid.UUID) *LearnerProgress {
	stats := make(map[Domain]DomainStats, len(AllDomains()))
	for _, d := range AllDomains() {
		stats[d] = DomainStats{}
	}

	return &LearnerProgress{
		UserID:               userID,
		DomainStats:          stats,
		Level:                LevelForXP(0),
		SeenQuestionIDs:      []string{},
		IncorrectQuestionIDs: []string{},
		ReviewQueue:          []ReviewItem{},
		EarnedBadges:         []BadgeID{},
		DailyProgress:        []DailyProgress{},
	}
}

// LevelForXP derives the level from an XP total. Level is a pure function of
// XP and is never meaningful on its own.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPInCurrentLevel returns how far into the current level an XP total is.
func XPInCurrentLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp % XPPerLevel
}

// Validate checks if the LearnerProgress has valid data.
// Returns an error if any field fails validation.
func (p *LearnerProgress) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProgressUserID
	}

	if p.QuestionsAnswered < 0 || p.CorrectCount < 0 || p.XP < 0 ||
		p.Streak < 0 || p.ConsecutiveCorrect < 0 {
		return ErrNegativeCounter
	}

	if p.CorrectCount > p.QuestionsAnswered {
		return ErrCorrectExceedsTotal
	}

	if p.Level != LevelForXP(p.XP) {
		return ErrInvalidProgressLevel
	}

	for domain, stats := range p.DomainStats {
		if !domain.IsValid() {
			return ErrUnknownDomain
		}
		if stats.Answered < 0 || stats.Correct < 0 || stats.Correct > stats.Answered {
			return ErrNegativeCounter
		}
	}

	return nil
}

// Normalize repairs a loaded record so that a corrupt or partially-written
// snapshot never propagates forward. Negative counters are clamped to zero,
// missing collections fall back to empty defaults, absent domains are filled
// in at zero, the daily log is re-capped, and the level is recomputed from
// XP. Returns true if anything had to be repaired.
func (p *LearnerProgress) Normalize() bool {
	repaired := false

	clamp := func(v *int) {
		if *v < 0 {
			*v = 0
			repaired = true
		}
	}
	clamp(&p.QuestionsAnswered)
	clamp(&p.CorrectCount)
	clamp(&p.XP)
	clamp(&p.Streak)
	clamp(&p.ConsecutiveCorrect)

	if p.CorrectCount > p.QuestionsAnswered {
		p.CorrectCount = p.QuestionsAnswered
		repaired = true
	}

	if p.DomainStats == nil {
		p.DomainStats = make(map[Domain]DomainStats, len(AllDomains()))
		repaired = true
	}
	for _, d := range AllDomains() {
		stats, ok := p.DomainStats[d]
		if !ok {
			p.DomainStats[d] = DomainStats{}
			repaired = true
			continue
		}
		if stats.Answered < 0 || stats.Correct < 0 || stats.Correct > stats.Answered {
			clamp(&stats.Answered)
			clamp(&stats.Correct)
			if stats.Correct > stats.Answered {
				stats.Correct = stats.Answered
			}
			p.DomainStats[d] = stats
			repaired = true
		}
	}
	for d := range p.DomainStats {
		if !d.IsValid() {
			delete(p.DomainStats, d)
			repaired = true
		}
	}

	if p.SeenQuestionIDs == nil {
		p.SeenQuestionIDs = []string{}
		repaired = true
	}
	if p.IncorrectQuestionIDs == nil {
		p.IncorrectQuestionIDs = []string{}
		repaired = true
	}
	if p.ReviewQueue == nil {
		p.ReviewQueue = []ReviewItem{}
		repaired = true
	}
	if p.EarnedBadges == nil {
		p.EarnedBadges = []BadgeID{}
		repaired = true
	}
	if p.DailyProgress == nil {
		p.DailyProgress = []DailyProgress{}
		repaired = true
	}
	if len(p.DailyProgress) > DailyProgressWindow {
		p.DailyProgress = p.DailyProgress[len(p.DailyProgress)-DailyProgressWindow:]
		repaired = true
	}

	if level := LevelForXP(p.XP); p.Level != level {
		p.Level = level
		repaired = true
	}

	return repaired
}

// Clone returns a deep copy of the record. The progress service computes each
// new state on a clone so a failed save never leaves a half-mutated snapshot.
func (p *LearnerProgress) Clone() *LearnerProgress {
	clone := *p

	clone.DomainStats = make(map[Domain]DomainStats, len(p.DomainStats))
	for d, stats := range p.DomainStats {
		clone.DomainStats[d] = stats
	}

	clone.SeenQuestionIDs = append([]string{}, p.SeenQuestionIDs...)
	clone.IncorrectQuestionIDs = append([]string{}, p.IncorrectQuestionIDs...)
	clone.ReviewQueue = append([]ReviewItem{}, p.ReviewQueue...)
	clone.EarnedBadges = append([]BadgeID{}, p.EarnedBadges...)
	clone.DailyProgress = append([]DailyProgress{}, p.DailyProgress...)

	return &clone
}

// HasSeen reports whether the learner has ever answered the question.
func (p *LearnerProgress) HasSeen(questionID string) bool {
	for _, id := range p.SeenQuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}

// MarkSeen adds the question to the seen set if it is not already present.
func (p *LearnerProgress) MarkSeen(questionID string) {
	if !p.HasSeen(questionID) {
		p.SeenQuestionIDs = append(p.SeenQuestionIDs, questionID)
	}
}

// MarkIncorrect adds the question to the incorrect set if absent.
func (p *LearnerProgress) MarkIncorrect(questionID string) {
	for _, id := range p.IncorrectQuestionIDs {
		if id == questionID {
			return
		}
	}
	p.IncorrectQuestionIDs = append(p.IncorrectQuestionIDs, questionID)
}

// ClearIncorrect removes the question from the incorrect set, if present.
// Called when a previously missed question is answered correctly.
func (p *LearnerProgress) ClearIncorrect(questionID string) {
	for i, id := range p.IncorrectQuestionIDs {
		if id == questionID {
			p.IncorrectQuestionIDs = append(
				p.IncorrectQuestionIDs[:i],
				p.IncorrectQuestionIDs[i+1:]...)
			return
		}
	}
}

// HasBadge reports whether the learner has earned the badge.
func (p *LearnerProgress) HasBadge(id BadgeID) bool {
	for _, earned := range p.EarnedBadges {
		if earned == id {
			return true
		}
	}
	return false
}

// AwardBadge adds the badge to the earned set. Earned badges are monotonic:
// awarding an already-earned badge is a no-op. Returns true if newly awarded.
func (p *LearnerProgress) AwardBadge(id BadgeID) bool {
	if p.HasBadge(id) {
		return false
	}
	p.EarnedBadges = append(p.EarnedBadges, id)
	return true
}
