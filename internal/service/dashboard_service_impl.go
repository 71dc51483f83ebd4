package service

import (
	"context"

	"github.com/alexanderramin/learnpath/internal/progress"
)

// recentBadgeCount is how many of the latest badges the dashboard shows.
const recentBadgeCount = 3

type dashboardService struct {
	session *Session
}

func NewDashboardService(session *Session) DashboardService {
	return &dashboardService{session: session}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	user := s.session.user
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	clone := user.Clone()
	summary := &DashboardSummary{
		User:           clone,
		Points:         user.Points,
		Level:          user.Level,
		ActivePlans:    len(s.session.plans),
		CompletedTasks: progress.CompletedTasks(s.session.plans),
		RecentBadges:   clone.RecentBadges(recentBadgeCount),
	}
	if i, err := s.session.findPlanLocked(""); err == nil {
		summary.CurrentPlan = s.session.plans[i].Clone()
	}
	return summary, nil
}
