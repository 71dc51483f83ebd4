package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learnpath/internal/db"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/gamification"
	"github.com/alexanderramin/learnpath/internal/importer"
	"github.com/alexanderramin/learnpath/internal/progress"
	"github.com/alexanderramin/learnpath/internal/repository"
	"github.com/alexanderramin/learnpath/internal/template"
)

type planService struct {
	session  *Session
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(session *Session, uow db.UnitOfWork, observers ...UseCaseObserver) PlanService {
	return &planService{
		session:  session,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Create generates a plan for field, appends it and makes it current.
func (s *planService) Create(ctx context.Context, field string, difficulty domain.Difficulty) (plan *domain.LearningPlan, err error) {
	field = strings.TrimSpace(field)
	fields := map[string]any{"field": field, "difficulty": string(difficulty)}
	defer track(ctx, s.observer, "create-plan", fields)(&err)

	if field == "" {
		return nil, ErrEmptyField
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}

	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if s.session.user == nil {
		return nil, ErrNotLoggedIn
	}

	plan, err = template.Generate(field, difficulty, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}
	fields["plan_id"] = plan.ID

	if err := s.addPlanLocked(ctx, plan); err != nil {
		return nil, err
	}
	return plan.Clone(), nil
}

// Import validates a plan file and adds it as a new current plan.
func (s *planService) Import(ctx context.Context, f *importer.PlanFile) (plan *domain.LearningPlan, err error) {
	fields := map[string]any{"field": f.Plan.Field}
	defer track(ctx, s.observer, "import-plan", fields)(&err)

	if errs := importer.ValidatePlanFile(f); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlanFile, errors.Join(errs...))
	}

	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if s.session.user == nil {
		return nil, ErrNotLoggedIn
	}

	plan, err = importer.Convert(f, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	fields["plan_id"] = plan.ID

	if err := s.addPlanLocked(ctx, plan); err != nil {
		return nil, err
	}
	return plan.Clone(), nil
}

// Export returns the plan as a portable file.
func (s *planService) Export(ctx context.Context, id string) (*importer.PlanFile, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	i, err := s.session.findPlanLocked(id)
	if err != nil {
		return nil, err
	}
	return importer.Export(s.session.plans[i]), nil
}

// addPlanLocked appends plan and makes it current, in the store first and
// then in the session. Callers hold session.mu.
func (s *planService) addPlanLocked(ctx context.Context, plan *domain.LearningPlan) error {
	plans := append(append([]*domain.LearningPlan{}, s.session.plans...), plan)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		state := repository.NewSQLiteStateRepo(tx)
		if err := state.SavePlans(ctx, plans); err != nil {
			return err
		}
		return state.SaveCurrentPlan(ctx, plan.ID)
	})
	if err != nil {
		return err
	}

	s.session.plans = plans
	s.session.currentPlanID = plan.ID
	return nil
}

func (s *planService) List(ctx context.Context) ([]*domain.LearningPlan, error) {
	return s.session.Plans(), nil
}

func (s *planService) Get(ctx context.Context, id string) (*domain.LearningPlan, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	i, err := s.session.findPlanLocked(id)
	if err != nil {
		return nil, err
	}
	return s.session.plans[i].Clone(), nil
}

// Use makes the plan the current one.
func (s *planService) Use(ctx context.Context, id string) (plan *domain.LearningPlan, err error) {
	defer track(ctx, s.observer, "use-plan", map[string]any{"plan_id": id})(&err)

	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("plan id: %w", ErrNotFound)
	}
	i, err := s.session.findPlanLocked(id)
	if err != nil {
		return nil, err
	}
	plan = s.session.plans[i]

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStateRepo(tx).SaveCurrentPlan(ctx, plan.ID)
	})
	if err != nil {
		return nil, err
	}
	s.session.currentPlanID = plan.ID
	return plan.Clone(), nil
}

func (s *planService) Current(ctx context.Context) (*domain.LearningPlan, error) {
	return s.Get(ctx, "")
}

// ToggleTask flips one task, recomputes its milestone and, for a signed-in
// user, moves points and awards level badges. The plan list and the user are
// written in one transaction; the session changes only after it commits.
func (s *planService) ToggleTask(ctx context.Context, planID, milestoneID, taskID string) (out *ToggleOutcome, err error) {
	fields := map[string]any{"plan_id": planID, "milestone_id": milestoneID, "task_id": taskID}
	defer track(ctx, s.observer, "toggle-task", fields)(&err)

	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	i, err := s.session.findPlanLocked(planID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan := s.session.plans[i].Clone()
	res, ok := progress.ToggleTask(plan, milestoneID, taskID, now)
	if !ok {
		return nil, fmt.Errorf("task %s/%s in plan %s: %w", milestoneID, taskID, plan.ID, ErrNotFound)
	}
	fields["completed"] = res.NowCompleted

	user := s.session.user.Clone()
	var badges []domain.Badge
	if user != nil {
		badges = gamification.ApplyTaskToggle(user, res.NowCompleted, now)
		fields["points"] = user.Points
		fields["new_badges"] = len(badges)
	}

	plans := replacePlan(s.session.plans, i, plan)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		state := repository.NewSQLiteStateRepo(tx)
		if user != nil {
			if err := state.SaveUser(ctx, user); err != nil {
				return err
			}
		}
		return state.SavePlans(ctx, plans)
	})
	if err != nil {
		return nil, err
	}

	s.session.plans = plans
	s.session.user = user

	// Hand back copies so callers cannot reach session state.
	outPlan := plan.Clone()
	m := outPlan.Milestone(res.Milestone.ID)
	return &ToggleOutcome{
		Plan:      outPlan,
		Milestone: m,
		Task:      m.Task(res.Task.ID),
		User:      user.Clone(),
		NewBadges: badges,
	}, nil
}

// SetNote replaces a task's notes and sentiment tag. An empty sentiment
// leaves the tag unchanged.
func (s *planService) SetNote(ctx context.Context, planID, milestoneID, taskID, notes string, sentiment domain.Sentiment) (task *domain.Task, err error) {
	fields := map[string]any{"plan_id": planID, "milestone_id": milestoneID, "task_id": taskID}
	defer track(ctx, s.observer, "set-note", fields)(&err)

	if sentiment != "" && !domain.ValidSentiments[string(sentiment)] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSentiment, sentiment)
	}

	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	i, err := s.session.findPlanLocked(planID)
	if err != nil {
		return nil, err
	}
	plan := s.session.plans[i].Clone()
	m := plan.Milestone(milestoneID)
	if m == nil {
		return nil, fmt.Errorf("milestone %s in plan %s: %w", milestoneID, plan.ID, ErrNotFound)
	}
	task = m.Task(taskID)
	if task == nil {
		return nil, fmt.Errorf("task %s/%s in plan %s: %w", milestoneID, taskID, plan.ID, ErrNotFound)
	}

	task.Notes = strings.TrimSpace(notes)
	if sentiment != "" {
		task.Sentiment = sentiment
	}
	plan.UpdatedAt = time.Now().UTC()

	plans := replacePlan(s.session.plans, i, plan)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStateRepo(tx).SavePlans(ctx, plans)
	})
	if err != nil {
		return nil, err
	}
	s.session.plans = plans

	out := *task
	if task.CompletedAt != nil {
		at := *task.CompletedAt
		out.CompletedAt = &at
	}
	return &out, nil
}
