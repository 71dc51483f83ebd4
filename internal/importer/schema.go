// Package importer reads and writes learning plans as portable JSON files.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// FormatVersion is written to exported files. Files without a version are
// read as version 1.
const FormatVersion = 1

// PlanFile is the top-level JSON structure for plan import and export.
type PlanFile struct {
	Version int        `json:"version"`
	Plan    PlanImport `json:"plan"`
}

// PlanImport defines the plan-level fields in the file.
type PlanImport struct {
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	Field             string            `json:"field"`
	Difficulty        string            `json:"difficulty"`
	EstimatedDuration string            `json:"estimated_duration,omitempty"`
	Objectives        []string          `json:"objectives,omitempty"`
	Milestones        []MilestoneImport `json:"milestones"`
}

// MilestoneImport defines one milestone and its tasks.
type MilestoneImport struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Tasks       []TaskImport     `json:"tasks"`
	Resources   []ResourceImport `json:"resources,omitempty"`
}

// TaskImport defines a task. CompletedAt is RFC 3339.
type TaskImport struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Completed   bool    `json:"completed,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Sentiment   string  `json:"sentiment,omitempty"`
}

type ResourceImport struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}

// ParsePlanFile decodes a plan file. Unknown fields are rejected so typos
// surface instead of being dropped.
func ParsePlanFile(data []byte) (*PlanFile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var f PlanFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	if f.Version == 0 {
		f.Version = FormatVersion
	}
	return &f, nil
}

// LoadPlanFile reads and parses a plan JSON file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanFile(data)
}

// Marshal encodes f as indented JSON with a trailing newline.
func (f *PlanFile) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
