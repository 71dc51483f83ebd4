package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }

func validMinimalFile() *PlanFile {
	return &PlanFile{
		Version: FormatVersion,
		Plan: PlanImport{
			Title:      "Go Learning Path",
			Field:      "Go",
			Difficulty: "beginner",
			Milestones: []MilestoneImport{
				{ID: "1", Title: "Basics", Tasks: []TaskImport{{ID: "1-1", Title: "Tour of Go"}}},
			},
		},
	}
}

func TestValidatePlanFile_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidatePlanFile(validMinimalFile()))
}

func TestValidatePlanFile_ValidFull(t *testing.T) {
	f := validMinimalFile()
	f.Plan.Milestones = append(f.Plan.Milestones, MilestoneImport{
		ID:    "2",
		Title: "Concurrency",
		Tasks: []TaskImport{
			{ID: "2-1", Title: "Goroutines", Completed: true, CompletedAt: ptrStr("2025-06-01T10:00:00Z"), Notes: "fun", Sentiment: "positive"},
			{ID: "2-2", Title: "Channels"},
		},
		Resources: []ResourceImport{{ID: "r1", Title: "Effective Go", URL: "https://go.dev/doc/effective_go", Type: "article"}},
	})
	assert.Empty(t, ValidatePlanFile(f))
}

func TestValidatePlanFile_MissingPlanFields(t *testing.T) {
	f := &PlanFile{Version: FormatVersion}
	errs := ValidatePlanFile(f)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "plan.title is required")
	assert.Contains(t, errs[1].Error(), "plan.field is required")
	assert.Contains(t, errs[2].Error(), "plan.difficulty is required")
	assert.Contains(t, errs[3].Error(), "at least one milestone")
}

func TestValidatePlanFile_InvalidDifficulty(t *testing.T) {
	f := validMinimalFile()
	f.Plan.Difficulty = "expert"
	errs := ValidatePlanFile(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `invalid value "expert"`)
}

func TestValidatePlanFile_UnsupportedVersion(t *testing.T) {
	f := validMinimalFile()
	f.Version = 7
	errs := ValidatePlanFile(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "version")
}

func TestValidatePlanFile_DuplicateIDs(t *testing.T) {
	f := validMinimalFile()
	f.Plan.Milestones = append(f.Plan.Milestones, MilestoneImport{
		ID:    "1",
		Title: "Again",
		Tasks: []TaskImport{{ID: "1-1", Title: "Dup"}},
	})
	errs := ValidatePlanFile(f)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), `milestones[1].id: duplicate id "1"`)
	assert.Contains(t, errs[1].Error(), `milestones[1].tasks[0].id: duplicate id "1-1"`)
}

func TestValidatePlanFile_TaskErrors(t *testing.T) {
	f := validMinimalFile()
	f.Plan.Milestones[0].Tasks = []TaskImport{
		{ID: "", Title: ""},
		{ID: "1-2", Title: "x", Sentiment: "angry"},
		{ID: "1-3", Title: "y", CompletedAt: ptrStr("yesterday")},
	}
	errs := ValidatePlanFile(f)
	require.Len(t, errs, 5)
	assert.Contains(t, errs[0].Error(), "tasks[0].id is required")
	assert.Contains(t, errs[1].Error(), "tasks[0].title is required")
	assert.Contains(t, errs[2].Error(), `sentiment: invalid value "angry"`)
	assert.Contains(t, errs[3].Error(), "completed_at is set on an incomplete task")
	assert.Contains(t, errs[4].Error(), "invalid timestamp")
}

func TestValidatePlanFile_ResourceType(t *testing.T) {
	f := validMinimalFile()
	f.Plan.Milestones[0].Resources = []ResourceImport{{ID: "r1", Title: "Pod", Type: "podcast"}}
	errs := ValidatePlanFile(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `resources[0].type: invalid value "podcast"`)
}

func TestParsePlanFile(t *testing.T) {
	f, err := ParsePlanFile([]byte(`{"plan": {"title": "T", "field": "F", "difficulty": "advanced", "milestones": []}}`))
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, f.Version, "missing version reads as the current one")
	assert.Equal(t, "advanced", f.Plan.Difficulty)

	_, err = ParsePlanFile([]byte(`{"plan": {"titel": "typo"}}`))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = ParsePlanFile([]byte(`not json`))
	assert.Error(t, err)
}
