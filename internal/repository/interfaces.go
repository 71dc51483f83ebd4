package repository

import (
	"context"

	"github.com/alexanderramin/learnpath/internal/domain"
)

// Keys of the whole-document entries in kv_store.
const (
	KeyUser        = "learnpath_user"
	KeyPlans       = "learnpath_plans"
	KeyCurrentPlan = "current_plan"
)

// StateRepo persists the signed-in user, their plans and the selected plan
// as whole JSON documents. Missing entries load as a fresh start: a nil user,
// no plans and no current plan.
type StateRepo interface {
	LoadUser(ctx context.Context) (*domain.User, error)
	SaveUser(ctx context.Context, u *domain.User) error
	LoadPlans(ctx context.Context) ([]*domain.LearningPlan, error)
	SavePlans(ctx context.Context, plans []*domain.LearningPlan) error
	LoadCurrentPlan(ctx context.Context) (string, error)
	SaveCurrentPlan(ctx context.Context, planID string) error
	Clear(ctx context.Context) error
}

type QuizAttemptRepo interface {
	Create(ctx context.Context, a *domain.QuizAttempt) error
	ListRecent(ctx context.Context, limit int) ([]*domain.QuizAttempt, error)
}
