package domain

import (
	"strings"
	"time"
)

// PointsPerLevel is the number of points that separates two levels.
const PointsPerLevel = 100

type LearningPreferences struct {
	Style      LearningStyle `json:"style"`
	Pace       Pace          `json:"pace"`
	Difficulty Difficulty    `json:"difficulty"`
}

// DefaultPreferences returns the preferences every new user starts with.
func DefaultPreferences() LearningPreferences {
	return LearningPreferences{
		Style:      StyleVisual,
		Pace:       PaceMedium,
		Difficulty: DifficultyBeginner,
	}
}

type User struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	Points      int                 `json:"points"`
	Level       int                 `json:"level"`
	Badges      []Badge             `json:"badges"`
	Preferences LearningPreferences `json:"learningPreferences"`
	JoinedAt    time.Time           `json:"joinedAt"`
}

// RecentBadges returns up to n of the most recently earned badges, oldest first.
func (u *User) RecentBadges(n int) []Badge {
	if n <= 0 || len(u.Badges) == 0 {
		return nil
	}
	if len(u.Badges) <= n {
		return u.Badges
	}
	return u.Badges[len(u.Badges)-n:]
}

// NameFromEmail derives a display name from the local part of an email address.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
	Rarity      Rarity    `json:"rarity"`
}
