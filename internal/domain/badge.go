package domain

// BadgeID identifies a one-time, non-revocable achievement.
type BadgeID string

// The badge catalog. Earned badges are never removed.
const (
	BadgeFirstExam    BadgeID = "first-exam"
	BadgeCentury      BadgeID = "century"
	BadgeAllDomains   BadgeID = "all-domains"
	BadgePassingScore BadgeID = "passing-score"
	BadgePerfectTen   BadgeID = "perfect-10"
	BadgeEarlyBird    BadgeID = "early-bird"
	BadgeNightOwl     BadgeID = "night-owl"
	BadgeStreakWeek   BadgeID = "streak-7"
	BadgeHalfway      BadgeID = "halfway"
	BadgeCoverage     BadgeID = "coverage"
)

// Badge carries the display metadata for an achievement.
type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// Badges is the full badge catalog keyed by ID.
var Badges = map[BadgeID]Badge{
	BadgeFirstExam: {
		ID:          BadgeFirstExam,
		Name:        "First Steps",
		Description: "First Full Exam Completed",
		Icon:        "🎓",
	},
	BadgeCentury: {
		ID:          BadgeCentury,
		Name:        "Century Club",
		Description: "100 Questions Answered",
		Icon:        "💯",
	},
	BadgeAllDomains: {
		ID:          BadgeAllDomains,
		Name:        "Well Rounded",
		Description: "Practiced All 4 Domains",
		Icon:        "🎯",
	},
	BadgePassingScore: {
		ID:          BadgePassingScore,
		Name:        "Passing Grade",
		Description: "Reached the Passing Score on an Exam",
		Icon:        "✅",
	},
	BadgePerfectTen: {
		ID:          BadgePerfectTen,
		Name:        "Perfect Ten",
		Description: "10 Correct in a Row",
		Icon:        "⭐",
	},
	BadgeEarlyBird: {
		ID:          BadgeEarlyBird,
		Name:        "Early Bird",
		Description: "Studied Before 8 AM",
		Icon:        "🌅",
	},
	BadgeNightOwl: {
		ID:          BadgeNightOwl,
		Name:        "Night Owl",
		Description: "Studied After 10 PM",
		Icon:        "🦉",
	},
	BadgeStreakWeek: {
		ID:          BadgeStreakWeek,
		Name:        "Week Warrior",
		Description: "7 Day Streak",
		Icon:        "🔥",
	},
	BadgeHalfway: {
		ID:          BadgeHalfway,
		Name:        "Halfway There",
		Description: "Seen 50% of Questions",
		Icon:        "🏃",
	},
	BadgeCoverage: {
		ID:          BadgeCoverage,
		Name:        "Completionist",
		Description: "Seen All Questions",
		Icon:        "🏆",
	},
}

// GetBadge looks up a badge by ID. Returns ErrUnknownBadge for IDs outside
// the catalog.
func GetBadge(id BadgeID) (Badge, error) {
	badge, ok := Badges[id]
	if !ok {
		return Badge{}, ErrUnknownBadge
	}
	return badge, nil
}
