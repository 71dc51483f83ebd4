package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/repository"
)

// Session is the in-memory state the services share: the signed-in user,
// their plans and the selected plan. It is loaded once at startup and kept in
// step with the store after every committed write.
type Session struct {
	mu            sync.Mutex
	user          *domain.User
	plans         []*domain.LearningPlan
	currentPlanID string
}

// NewSession returns an empty session: nobody signed in and no plans.
func NewSession() *Session {
	return &Session{plans: []*domain.LearningPlan{}}
}

// LoadSession reads the persisted state. A current plan id that no longer
// matches a plan is dropped.
func LoadSession(ctx context.Context, state repository.StateRepo) (*Session, error) {
	user, err := state.LoadUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	plans, err := state.LoadPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading plans: %w", err)
	}
	current, err := state.LoadCurrentPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading current plan: %w", err)
	}

	s := &Session{user: user, plans: plans}
	if _, err := s.findPlanLocked(current); err == nil && current != "" {
		s.currentPlanID = current
	}
	return s, nil
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// Plans returns copies of all plans in creation order.
func (s *Session) Plans() []*domain.LearningPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePlans(s.plans)
}

func (s *Session) CurrentPlanID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPlanID
}

// findPlanLocked resolves id to an index into plans. An empty id means the
// current plan. Otherwise an exact match wins, then a unique prefix.
func (s *Session) findPlanLocked(id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		if s.currentPlanID == "" {
			return -1, ErrNoCurrentPlan
		}
		id = s.currentPlanID
	}

	match := -1
	for i, p := range s.plans {
		if p.ID == id {
			return i, nil
		}
		if strings.HasPrefix(p.ID, id) {
			if match >= 0 {
				return -1, fmt.Errorf("plan %q: %w", id, ErrAmbiguousID)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("plan %q: %w", id, ErrNotFound)
	}
	return match, nil
}

// replacePlan returns a copy of plans with plans[i] swapped for p.
func replacePlan(plans []*domain.LearningPlan, i int, p *domain.LearningPlan) []*domain.LearningPlan {
	out := make([]*domain.LearningPlan, len(plans))
	copy(out, plans)
	out[i] = p
	return out
}

func clonePlans(plans []*domain.LearningPlan) []*domain.LearningPlan {
	out := make([]*domain.LearningPlan, len(plans))
	for i, p := range plans {
		out[i] = p.Clone()
	}
	return out
}
