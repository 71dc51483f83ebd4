package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://learnpath/plan_template.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles the embedded JSON schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// ValidateJSON checks raw template JSON against the plan template schema.
func ValidateJSON(raw []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling template schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// ValidateTemplate checks rules the JSON schema cannot express.
// Returns a slice of errors (empty if valid).
func ValidateTemplate(t *PlanTemplate) []error {
	var errs []error

	milestoneIDs := map[string]bool{}
	taskIDs := map[string]bool{}
	for i, m := range t.Milestones {
		if milestoneIDs[m.ID] {
			errs = append(errs, fmt.Errorf("milestone[%d]: duplicate id %q", i, m.ID))
		}
		milestoneIDs[m.ID] = true
		if len(m.Tasks) == 0 {
			errs = append(errs, fmt.Errorf("milestone[%d]: at least one task is required", i))
		}
		for j, task := range m.Tasks {
			if taskIDs[task.ID] {
				errs = append(errs, fmt.Errorf("milestone[%d].task[%d]: duplicate id %q", i, j, task.ID))
			}
			taskIDs[task.ID] = true
		}
	}

	vars := map[string]string{"field": "x", "difficulty": "x"}
	for _, s := range t.strings() {
		if _, err := ExpandTemplate(s, vars); err != nil {
			errs = append(errs, fmt.Errorf("template string %q: %w", s, err))
		}
	}

	return errs
}

// ParseTemplate validates raw JSON and decodes it into a PlanTemplate.
func ParseTemplate(raw []byte) (*PlanTemplate, error) {
	if err := ValidateJSON(raw); err != nil {
		return nil, err
	}
	var t PlanTemplate
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if errs := ValidateTemplate(&t); len(errs) > 0 {
		return nil, fmt.Errorf("invalid template %q: %v", t.ID, errs)
	}
	return &t, nil
}

// strings returns every placeholder-bearing string in the template.
func (t *PlanTemplate) strings() []string {
	out := []string{t.Title, t.Description}
	out = append(out, t.Objectives...)
	for _, m := range t.Milestones {
		out = append(out, m.Title, m.Description)
		for _, task := range m.Tasks {
			out = append(out, task.Title, task.Description)
		}
		for _, r := range m.Resources {
			out = append(out, r.Title, r.Notes)
		}
	}
	return out
}
