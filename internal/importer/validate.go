package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
)

// ValidatePlanFile checks the file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanFile(f *PlanFile) []error {
	var errs []error

	if f.Version != FormatVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d", f.Version))
	}
	errs = append(errs, validatePlan(&f.Plan)...)

	taskIDs := make(map[string]bool)
	milestoneIDs := make(map[string]bool)
	for i := range f.Plan.Milestones {
		errs = append(errs, validateMilestone(i, &f.Plan.Milestones[i], milestoneIDs, taskIDs)...)
	}

	return errs
}

func validatePlan(p *PlanImport) []error {
	var errs []error

	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, fmt.Errorf("plan.title is required"))
	}
	if strings.TrimSpace(p.Field) == "" {
		errs = append(errs, fmt.Errorf("plan.field is required"))
	}
	if p.Difficulty == "" {
		errs = append(errs, fmt.Errorf("plan.difficulty is required"))
	} else if !domain.Difficulty(p.Difficulty).Valid() {
		errs = append(errs, fmt.Errorf("plan.difficulty: invalid value %q", p.Difficulty))
	}
	if len(p.Milestones) == 0 {
		errs = append(errs, fmt.Errorf("plan.milestones: at least one milestone is required"))
	}

	return errs
}

func validateMilestone(i int, m *MilestoneImport, milestoneIDs, taskIDs map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("milestones[%d]", i)

	if m.ID == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	} else if milestoneIDs[m.ID] {
		errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, m.ID))
	} else {
		milestoneIDs[m.ID] = true
	}
	if m.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}

	for j, t := range m.Tasks {
		tp := fmt.Sprintf("%s.tasks[%d]", prefix, j)

		// Tasks are addressed as MILESTONE TASK, but ids stay unique plan-wide
		// like the generated "1-1" scheme.
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", tp))
		} else if taskIDs[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", tp, t.ID))
		} else {
			taskIDs[t.ID] = true
		}
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", tp))
		}
		if t.Sentiment != "" && !domain.ValidSentiments[t.Sentiment] {
			errs = append(errs, fmt.Errorf("%s.sentiment: invalid value %q", tp, t.Sentiment))
		}
		if t.CompletedAt != nil {
			if !t.Completed {
				errs = append(errs, fmt.Errorf("%s.completed_at is set on an incomplete task", tp))
			}
			if _, err := time.Parse(time.RFC3339, *t.CompletedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.completed_at: invalid timestamp %q (expected RFC 3339)", tp, *t.CompletedAt))
			}
		}
	}

	for j, r := range m.Resources {
		rp := fmt.Sprintf("%s.resources[%d]", prefix, j)
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", rp))
		}
		if !domain.ValidResourceTypes[r.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", rp, r.Type))
		}
	}

	return errs
}
