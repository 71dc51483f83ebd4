package service

import (
	"context"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/importer"
	"github.com/alexanderramin/learnpath/internal/quiz"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, name, email, password, confirm string) (*domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
}

// ToggleOutcome is the state after a task toggle. User is nil when nobody is
// signed in; points only move for a signed-in user.
type ToggleOutcome struct {
	Plan      *domain.LearningPlan
	Milestone *domain.Milestone
	Task      *domain.Task
	User      *domain.User
	NewBadges []domain.Badge
}

// PlanService manages the session's plans. An empty plan id means the current
// plan; otherwise an id may be given as a unique prefix.
type PlanService interface {
	Create(ctx context.Context, field string, difficulty domain.Difficulty) (*domain.LearningPlan, error)
	List(ctx context.Context) ([]*domain.LearningPlan, error)
	Get(ctx context.Context, id string) (*domain.LearningPlan, error)
	Use(ctx context.Context, id string) (*domain.LearningPlan, error)
	Current(ctx context.Context) (*domain.LearningPlan, error)
	ToggleTask(ctx context.Context, planID, milestoneID, taskID string) (*ToggleOutcome, error)
	SetNote(ctx context.Context, planID, milestoneID, taskID, notes string, sentiment domain.Sentiment) (*domain.Task, error)
	Import(ctx context.Context, f *importer.PlanFile) (*domain.LearningPlan, error)
	Export(ctx context.Context, id string) (*importer.PlanFile, error)
}

// QuizOutcome is the recorded result of a finished run.
type QuizOutcome struct {
	Attempt   *domain.QuizAttempt
	Result    quiz.Result
	User      *domain.User
	NewBadges []domain.Badge
}

type QuizService interface {
	Start(field string, difficulty domain.Difficulty) (*quiz.Run, error)
	Complete(ctx context.Context, run *quiz.Run) (*QuizOutcome, error)
	History(ctx context.Context, limit int) ([]*domain.QuizAttempt, error)
}

// DashboardSummary is the signed-in user's overview.
type DashboardSummary struct {
	User           *domain.User
	Points         int
	Level          int
	ActivePlans    int
	CompletedTasks int
	RecentBadges   []domain.Badge
	CurrentPlan    *domain.LearningPlan
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
