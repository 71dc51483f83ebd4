package gamification

import (
	"testing"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newUser(points int) *domain.User {
	return &domain.User{ID: "u1", Points: points, Level: LevelFor(points)}
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{250, 3},
		{1000, 11},
		{-5, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelFor(tc.points), "points=%d", tc.points)
	}
}

func TestApplyTaskToggle_Complete(t *testing.T) {
	u := newUser(0)
	badges := ApplyTaskToggle(u, true, testNow)
	assert.Equal(t, 10, u.Points)
	assert.Equal(t, 1, u.Level)
	assert.Empty(t, badges)
	assert.Empty(t, u.Badges)
}

func TestApplyTaskToggle_PointFloor(t *testing.T) {
	u := newUser(5)
	ApplyTaskToggle(u, false, testNow)
	assert.Equal(t, 0, u.Points)
	assert.Equal(t, 1, u.Level)

	ApplyTaskToggle(u, false, testNow)
	assert.Equal(t, 0, u.Points, "points never go negative")
}

func TestApplyTaskToggle_LevelUpAwardsBadge(t *testing.T) {
	u := newUser(95)
	badges := ApplyTaskToggle(u, true, testNow)

	assert.Equal(t, 105, u.Points)
	assert.Equal(t, 2, u.Level)
	require.Len(t, badges, 1)
	b := badges[0]
	assert.Equal(t, "Level 2", b.Name)
	assert.Equal(t, "Reached level 2", b.Description)
	assert.Equal(t, domain.RarityCommon, b.Rarity)
	assert.Equal(t, testNow, b.EarnedAt)
	assert.NotEmpty(t, b.ID)
	assert.NotEmpty(t, b.Icon)
	assert.Equal(t, badges, u.Badges)
}

func TestApplyTaskToggle_LevelDropKeepsBadges(t *testing.T) {
	u := newUser(95)
	ApplyTaskToggle(u, true, testNow)
	require.Len(t, u.Badges, 1)

	badges := ApplyTaskToggle(u, false, testNow)
	assert.Empty(t, badges)
	assert.Equal(t, 95, u.Points)
	assert.Equal(t, 1, u.Level, "level follows points down")
	assert.Len(t, u.Badges, 1, "badges are never removed")
}

func TestApplyTaskToggle_ReRisingAppendsAgain(t *testing.T) {
	u := newUser(95)
	ApplyTaskToggle(u, true, testNow)
	ApplyTaskToggle(u, false, testNow)
	ApplyTaskToggle(u, true, testNow)

	require.Len(t, u.Badges, 2, "badges are append-only and never deduplicated")
	assert.Equal(t, "Level 2", u.Badges[0].Name)
	assert.Equal(t, "Level 2", u.Badges[1].Name)
	assert.NotEqual(t, u.Badges[0].ID, u.Badges[1].ID)
}

func TestApplyTaskToggle_DoubleToggleRestoresPoints(t *testing.T) {
	for _, start := range []int{0, 40, 95, 130} {
		u := newUser(start)
		ApplyTaskToggle(u, true, testNow)
		ApplyTaskToggle(u, false, testNow)
		assert.Equal(t, start, u.Points, "start=%d", start)
		assert.Equal(t, LevelFor(start), u.Level, "start=%d", start)
	}
}

func TestAddPoints_MultiLevelJump(t *testing.T) {
	u := newUser(90)
	badges := AddPoints(u, 220, testNow)

	assert.Equal(t, 310, u.Points)
	assert.Equal(t, 4, u.Level)
	require.Len(t, badges, 3, "one badge per crossed level")
	assert.Equal(t, "Level 2", badges[0].Name)
	assert.Equal(t, "Level 3", badges[1].Name)
	assert.Equal(t, "Level 4", badges[2].Name)
}

func TestAddPoints_ZeroValueUser(t *testing.T) {
	u := &domain.User{}
	badges := AddPoints(u, 0, testNow)
	assert.Empty(t, badges)
	assert.Equal(t, 1, u.Level)
}

func TestLevelInvariantHoldsAfterEveryMutation(t *testing.T) {
	u := newUser(0)
	steps := []bool{true, true, false, true, true, true, false, false, false, false, false}
	for i := 0; i < 30; i++ {
		steps = append(steps, true)
	}
	for i, completed := range steps {
		ApplyTaskToggle(u, completed, testNow)
		assert.GreaterOrEqual(t, u.Points, 0, "step %d", i)
		assert.Equal(t, u.Points/100+1, u.Level, "step %d", i)
	}
}

func TestQuizRarity(t *testing.T) {
	cases := []struct {
		score  float64
		rarity domain.Rarity
		ok     bool
	}{
		{0, "", false},
		{50, "", false},
		{79.99, "", false},
		{80, domain.RarityRare, true},
		{94.9, domain.RarityRare, true},
		{95, domain.RarityEpic, true},
		{100, domain.RarityEpic, true},
	}
	for _, tc := range cases {
		rarity, ok := QuizRarity(tc.score)
		assert.Equal(t, tc.ok, ok, "score=%v", tc.score)
		assert.Equal(t, tc.rarity, rarity, "score=%v", tc.score)
	}
}

func TestAwardQuizBadge(t *testing.T) {
	u := newUser(0)

	assert.Nil(t, AwardQuizBadge(u, 50, "Rust", testNow))
	assert.Empty(t, u.Badges)

	b := AwardQuizBadge(u, 100, "Rust", testNow)
	require.NotNil(t, b)
	assert.Equal(t, "Quiz Master", b.Name)
	assert.Equal(t, "Scored 100% on Rust quiz", b.Description)
	assert.Equal(t, domain.RarityEpic, b.Rarity)
	require.Len(t, u.Badges, 1)
	assert.Equal(t, *b, u.Badges[0])
}
