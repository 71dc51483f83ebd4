// Package progress toggles tasks and keeps milestone progress consistent
// with task completion.
package progress

import (
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
)

// Result describes the outcome of a successful task toggle.
type Result struct {
	Milestone *domain.Milestone
	Task      *domain.Task

	// NowCompleted is the task's state after the toggle.
	NowCompleted bool
}

// ToggleTask flips the completion flag of one task and recomputes its
// milestone. The plan is mutated in place. ok is false, and nothing changes,
// when plan is nil or the milestone or task does not exist.
//
// Completing a task stamps CompletedAt with now; un-completing clears it.
func ToggleTask(plan *domain.LearningPlan, milestoneID, taskID string, now time.Time) (res Result, ok bool) {
	if plan == nil {
		return Result{}, false
	}
	m := plan.Milestone(milestoneID)
	if m == nil {
		return Result{}, false
	}
	task := m.Task(taskID)
	if task == nil {
		return Result{}, false
	}

	task.Completed = !task.Completed
	if task.Completed {
		stamp := now
		task.CompletedAt = &stamp
	} else {
		task.CompletedAt = nil
	}

	Recompute(m)
	plan.UpdatedAt = now

	return Result{Milestone: m, Task: task, NowCompleted: task.Completed}, true
}

// Recompute derives Progress and Completed from the milestone's tasks.
// Completed is true only at exactly 100.
func Recompute(m *domain.Milestone) {
	done, total := m.TaskCounts()
	if total == 0 {
		m.Progress = 0
		m.Completed = false
		return
	}
	m.Progress = float64(done) / float64(total) * 100
	m.Completed = m.Progress == 100
}

// PlanProgress returns the share of completed tasks across the whole plan, 0-100.
func PlanProgress(plan *domain.LearningPlan) float64 {
	done, total := plan.TaskCounts()
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

// CompletedTasks counts completed tasks across all plans.
func CompletedTasks(plans []*domain.LearningPlan) int {
	var n int
	for _, p := range plans {
		done, _ := p.TaskCounts()
		n += done
	}
	return n
}

// MilestoneState classifies a milestone for display.
func MilestoneState(m *domain.Milestone) domain.MilestoneState {
	switch {
	case m.Completed:
		return domain.MilestoneCompleted
	case m.Progress > 0:
		return domain.MilestoneInProgress
	default:
		return domain.MilestonePending
	}
}
