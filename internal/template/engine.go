package template

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/google/uuid"
)

//go:embed templates/learning_path.json
var learningPathJSON []byte

//go:embed templates/schema.json
var schemaJSON []byte

var (
	defaultOnce sync.Once
	defaultTmpl *PlanTemplate
	defaultErr  error
)

// Default returns the built-in learning path template, parsed and validated once.
func Default() (*PlanTemplate, error) {
	defaultOnce.Do(func() {
		defaultTmpl, defaultErr = ParseTemplate(learningPathJSON)
	})
	return defaultTmpl, defaultErr
}

// Generate builds a learning plan for field and difficulty from the built-in
// template. It performs no validation of field; callers reject empty input.
func Generate(field string, difficulty domain.Difficulty, now time.Time) (*domain.LearningPlan, error) {
	tmpl, err := Default()
	if err != nil {
		return nil, fmt.Errorf("loading built-in template: %w", err)
	}
	return Execute(tmpl, field, difficulty, now)
}

// EstimatedDuration looks up the duration string for a difficulty, falling
// back to the template default for anything unrecognised.
func (t *PlanTemplate) EstimatedDuration(difficulty domain.Difficulty) string {
	if d, ok := t.Durations[string(difficulty)]; ok {
		return d
	}
	return t.DefaultDuration
}

// Execute generates a plan from a template schema. Every milestone starts at
// zero progress with all tasks incomplete.
func Execute(t *PlanTemplate, field string, difficulty domain.Difficulty, now time.Time) (*domain.LearningPlan, error) {
	vars := map[string]string{
		"field":      field,
		"difficulty": string(difficulty),
	}
	expand := func(s string) (string, error) {
		out, err := ExpandTemplate(s, vars)
		if err != nil {
			return "", fmt.Errorf("expanding '%s': %w", s, err)
		}
		return out, nil
	}

	title, err := expand(t.Title)
	if err != nil {
		return nil, err
	}
	description, err := expand(t.Description)
	if err != nil {
		return nil, err
	}

	objectives := make([]string, 0, len(t.Objectives))
	for _, o := range t.Objectives {
		obj, err := expand(o)
		if err != nil {
			return nil, err
		}
		objectives = append(objectives, obj)
	}

	milestones := make([]domain.Milestone, 0, len(t.Milestones))
	for _, mc := range t.Milestones {
		m := domain.Milestone{
			ID:        mc.ID,
			Tasks:     make([]domain.Task, 0, len(mc.Tasks)),
			Resources: make([]domain.Resource, 0, len(mc.Resources)),
		}
		if m.Title, err = expand(mc.Title); err != nil {
			return nil, err
		}
		if m.Description, err = expand(mc.Description); err != nil {
			return nil, err
		}

		for _, tc := range mc.Tasks {
			task := domain.Task{
				ID:        tc.ID,
				Sentiment: domain.SentimentNeutral,
			}
			if task.Title, err = expand(tc.Title); err != nil {
				return nil, err
			}
			if task.Description, err = expand(tc.Description); err != nil {
				return nil, err
			}
			m.Tasks = append(m.Tasks, task)
		}

		for _, rc := range mc.Resources {
			r := domain.Resource{
				ID:   rc.ID,
				URL:  rc.URL,
				Type: domain.ResourceType(rc.Type),
			}
			if r.Title, err = expand(rc.Title); err != nil {
				return nil, err
			}
			if r.Notes, err = expand(rc.Notes); err != nil {
				return nil, err
			}
			m.Resources = append(m.Resources, r)
		}

		milestones = append(milestones, m)
	}

	return &domain.LearningPlan{
		ID:                uuid.New().String(),
		Title:             title,
		Description:       description,
		Field:             field,
		Difficulty:        difficulty,
		EstimatedDuration: t.EstimatedDuration(difficulty),
		Objectives:        objectives,
		Milestones:        milestones,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
