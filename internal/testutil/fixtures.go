package testutil

import (
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/template"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.User)

func WithPoints(points int) UserOption {
	return func(u *domain.User) {
		u.Points = points
		u.Level = points/domain.PointsPerLevel + 1
	}
}

func WithBadges(badges ...domain.Badge) UserOption {
	return func(u *domain.User) {
		u.Badges = append(u.Badges, badges...)
	}
}

func NewTestUser(email string, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:          uuid.New().String(),
		Email:       email,
		Name:        domain.NameFromEmail(email),
		Level:       1,
		Badges:      []domain.Badge{},
		Preferences: domain.DefaultPreferences(),
		JoinedAt:    time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func NewTestBadge(name string) domain.Badge {
	return domain.Badge{
		ID:       uuid.New().String(),
		Name:     name,
		Icon:     "🏆",
		EarnedAt: time.Now().UTC().Truncate(time.Second),
		Rarity:   domain.RarityCommon,
	}
}

// Plan options
type PlanOption func(*domain.LearningPlan)

// WithCompleted marks the given task ids complete without touching progress.
func WithCompleted(taskIDs ...string) PlanOption {
	return func(p *domain.LearningPlan) {
		done := make(map[string]bool, len(taskIDs))
		for _, id := range taskIDs {
			done[id] = true
		}
		for mi := range p.Milestones {
			for ti := range p.Milestones[mi].Tasks {
				if done[p.Milestones[mi].Tasks[ti].ID] {
					p.Milestones[mi].Tasks[ti].Completed = true
				}
			}
		}
	}
}

func WithUpdatedAt(t time.Time) PlanOption {
	return func(p *domain.LearningPlan) {
		p.UpdatedAt = t
	}
}

// NewTestPlan builds a plan from the built-in template, so milestone ids are
// "1" and "2" with tasks "1-1".."1-3" and "2-1", "2-2".
func NewTestPlan(field string, opts ...PlanOption) *domain.LearningPlan {
	now := time.Now().UTC().Truncate(time.Second)
	p, err := template.Generate(field, domain.DifficultyBeginner, now)
	if err != nil {
		panic("testutil: generating plan: " + err.Error())
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestAttempt(field string, correct, total int, finishedAt time.Time) *domain.QuizAttempt {
	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total) * 100
	}
	return &domain.QuizAttempt{
		ID:            uuid.New().String(),
		QuizID:        uuid.New().String(),
		Field:         field,
		Difficulty:    domain.DifficultyBeginner,
		Correct:       correct,
		Total:         total,
		Score:         score,
		PointsAwarded: int(score + 0.5),
		FinishedAt:    finishedAt.UTC().Truncate(time.Second),
	}
}
