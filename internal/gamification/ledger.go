// Package gamification keeps a user's points, level and badges consistent.
package gamification

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/google/uuid"
)

// TaskPoints is the credit for completing one task.
const TaskPoints = 10

const (
	levelBadgeIcon = "🏆"
	quizBadgeIcon  = "🧠"

	quizMasterThreshold = 80.0
	quizEpicThreshold   = 95.0
)

// LevelFor derives the level for a point total: one level per 100 points,
// starting at 1.
func LevelFor(points int) int {
	if points < 0 {
		points = 0
	}
	return points/domain.PointsPerLevel + 1
}

// ApplyTaskToggle credits or debits a user for a task toggle. nowCompleted is
// the task's state after the toggle. Points never drop below zero. Returns
// any badges awarded by the change.
func ApplyTaskToggle(user *domain.User, nowCompleted bool, now time.Time) []domain.Badge {
	if nowCompleted {
		return AddPoints(user, TaskPoints, now)
	}
	user.Points = max(0, user.Points-TaskPoints)
	return syncLevel(user, now)
}

// AddPoints credits n points and runs the level-up check.
func AddPoints(user *domain.User, n int, now time.Time) []domain.Badge {
	user.Points = max(0, user.Points+n)
	return syncLevel(user, now)
}

// syncLevel recomputes the level from points. A rise appends one "Level n"
// badge for every level crossed; a drop removes nothing.
func syncLevel(user *domain.User, now time.Time) []domain.Badge {
	prev := user.Level
	user.Level = LevelFor(user.Points)
	if user.Level <= prev {
		return nil
	}

	from := prev + 1
	if from < 2 {
		from = 2
	}
	var awarded []domain.Badge
	for n := from; n <= user.Level; n++ {
		awarded = append(awarded, domain.Badge{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Level %d", n),
			Description: fmt.Sprintf("Reached level %d", n),
			Icon:        levelBadgeIcon,
			EarnedAt:    now,
			Rarity:      domain.RarityCommon,
		})
	}
	user.Badges = append(user.Badges, awarded...)
	return awarded
}

// QuizRarity returns the badge rarity for a quiz score, and false when the
// score does not earn a badge.
func QuizRarity(score float64) (domain.Rarity, bool) {
	switch {
	case score >= quizEpicThreshold:
		return domain.RarityEpic, true
	case score >= quizMasterThreshold:
		return domain.RarityRare, true
	default:
		return "", false
	}
}

// AwardQuizBadge appends a "Quiz Master" badge when score is at least 80.
func AwardQuizBadge(user *domain.User, score float64, field string, now time.Time) *domain.Badge {
	rarity, ok := QuizRarity(score)
	if !ok {
		return nil
	}
	badge := domain.Badge{
		ID:          uuid.New().String(),
		Name:        "Quiz Master",
		Description: fmt.Sprintf("Scored %d%% on %s quiz", int(math.Round(score)), field),
		Icon:        quizBadgeIcon,
		EarnedAt:    now,
		Rarity:      rarity,
	}
	user.Badges = append(user.Badges, badge)
	return &badge
}
