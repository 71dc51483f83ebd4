package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/progress"
	"github.com/google/uuid"
)

// Convert transforms a validated PlanFile into a new plan with a fresh id.
// Call ValidatePlanFile first; Convert assumes the file is valid. Milestone
// progress is recomputed from the tasks rather than trusted from the file,
// and completed tasks without a timestamp are stamped with now.
func Convert(f *PlanFile, now time.Time) (*domain.LearningPlan, error) {
	src := f.Plan
	plan := &domain.LearningPlan{
		ID:                uuid.New().String(),
		Title:             strings.TrimSpace(src.Title),
		Description:       src.Description,
		Field:             strings.TrimSpace(src.Field),
		Difficulty:        domain.Difficulty(src.Difficulty),
		EstimatedDuration: src.EstimatedDuration,
		Objectives:        append([]string{}, src.Objectives...),
		Milestones:        make([]domain.Milestone, 0, len(src.Milestones)),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	for _, mi := range src.Milestones {
		m := domain.Milestone{
			ID:          mi.ID,
			Title:       mi.Title,
			Description: mi.Description,
			Tasks:       make([]domain.Task, 0, len(mi.Tasks)),
			Resources:   make([]domain.Resource, 0, len(mi.Resources)),
		}

		for _, ti := range mi.Tasks {
			task := domain.Task{
				ID:          ti.ID,
				Title:       ti.Title,
				Description: ti.Description,
				Completed:   ti.Completed,
				Notes:       ti.Notes,
				Sentiment:   domain.Sentiment(domain.CoalesceStr(ti.Sentiment, string(domain.SentimentNeutral))),
			}
			if ti.Completed {
				at := now
				if ti.CompletedAt != nil {
					parsed, err := time.Parse(time.RFC3339, *ti.CompletedAt)
					if err != nil {
						return nil, fmt.Errorf("parsing %s completed_at: %w", ti.ID, err)
					}
					at = parsed.UTC()
				}
				task.CompletedAt = &at
			}
			m.Tasks = append(m.Tasks, task)
		}

		for _, ri := range mi.Resources {
			m.Resources = append(m.Resources, domain.Resource{
				ID:    ri.ID,
				Title: ri.Title,
				URL:   ri.URL,
				Type:  domain.ResourceType(ri.Type),
				Notes: ri.Notes,
			})
		}

		progress.Recompute(&m)
		plan.Milestones = append(plan.Milestones, m)
	}

	return plan, nil
}

// Export builds a PlanFile from a plan. The plan id and timestamps are not
// part of the file; importing it creates a new plan.
func Export(p *domain.LearningPlan) *PlanFile {
	f := &PlanFile{
		Version: FormatVersion,
		Plan: PlanImport{
			Title:             p.Title,
			Description:       p.Description,
			Field:             p.Field,
			Difficulty:        string(p.Difficulty),
			EstimatedDuration: p.EstimatedDuration,
			Objectives:        append([]string{}, p.Objectives...),
			Milestones:        make([]MilestoneImport, 0, len(p.Milestones)),
		},
	}

	for _, m := range p.Milestones {
		mi := MilestoneImport{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Tasks:       make([]TaskImport, 0, len(m.Tasks)),
		}
		for _, t := range m.Tasks {
			ti := TaskImport{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Completed:   t.Completed,
				Notes:       t.Notes,
				Sentiment:   string(t.Sentiment),
			}
			if t.Completed && t.CompletedAt != nil {
				s := t.CompletedAt.UTC().Format(time.RFC3339)
				ti.CompletedAt = &s
			}
			mi.Tasks = append(mi.Tasks, ti)
		}
		for _, r := range m.Resources {
			mi.Resources = append(mi.Resources, ResourceImport{
				ID:    r.ID,
				Title: r.Title,
				URL:   r.URL,
				Type:  string(r.Type),
				Notes: r.Notes,
			})
		}
		f.Plan.Milestones = append(f.Plan.Milestones, mi)
	}

	return f
}
