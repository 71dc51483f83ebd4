package template

import (
	"testing"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestGenerate_RustBeginner(t *testing.T) {
	plan, err := Generate("Rust", domain.DifficultyBeginner, testNow)
	require.NoError(t, err)

	assert.Equal(t, "Rust Learning Path", plan.Title)
	assert.Equal(t, "Comprehensive beginner level plan for mastering Rust", plan.Description)
	assert.Equal(t, "Rust", plan.Field)
	assert.Equal(t, domain.DifficultyBeginner, plan.Difficulty)
	assert.Equal(t, "3-6 months", plan.EstimatedDuration)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, testNow, plan.CreatedAt)
	assert.Equal(t, testNow, plan.UpdatedAt)

	require.Len(t, plan.Milestones, 2)
	first, second := plan.Milestones[0], plan.Milestones[1]
	assert.Equal(t, "Rust Fundamentals", first.Title)
	assert.Equal(t, "Intermediate Rust", second.Title)
	assert.Len(t, first.Tasks, 3)
	assert.Len(t, second.Tasks, 2)

	require.Len(t, first.Resources, 1)
	assert.Equal(t, "Rust Documentation", first.Resources[0].Title)
	assert.Equal(t, domain.ResourceArticle, first.Resources[0].Type)
	assert.Equal(t, "#", first.Resources[0].URL)
	assert.Empty(t, second.Resources)
}

func TestGenerate_InitialState(t *testing.T) {
	plan, err := Generate("Go", domain.DifficultyAdvanced, testNow)
	require.NoError(t, err)

	for _, m := range plan.Milestones {
		assert.False(t, m.Completed, "milestone %s", m.ID)
		assert.Zero(t, m.Progress, "milestone %s", m.ID)
		for _, task := range m.Tasks {
			assert.False(t, task.Completed, "task %s", task.ID)
			assert.Nil(t, task.CompletedAt, "task %s", task.ID)
			assert.Empty(t, task.Notes)
			assert.Equal(t, domain.SentimentNeutral, task.Sentiment)
		}
	}
	assert.Equal(t, "1-1", plan.Milestones[0].Tasks[0].ID)
	assert.Equal(t, "2-2", plan.Milestones[1].Tasks[1].ID)
}

func TestGenerate_DurationLookup(t *testing.T) {
	cases := []struct {
		difficulty domain.Difficulty
		want       string
	}{
		{domain.DifficultyBeginner, "3-6 months"},
		{domain.DifficultyIntermediate, "6-12 months"},
		{domain.DifficultyAdvanced, "12-18 months"},
		{"expert", "6-12 months"},
		{"", "6-12 months"},
	}
	for _, tc := range cases {
		plan, err := Generate("Math", tc.difficulty, testNow)
		require.NoError(t, err)
		assert.Equal(t, tc.want, plan.EstimatedDuration, "difficulty=%q", tc.difficulty)
	}
}

func TestGenerate_ObjectivesIgnoreDifficulty(t *testing.T) {
	beginner, err := Generate("Chess", domain.DifficultyBeginner, testNow)
	require.NoError(t, err)
	advanced, err := Generate("Chess", domain.DifficultyAdvanced, testNow)
	require.NoError(t, err)

	require.Len(t, beginner.Objectives, 4)
	assert.Equal(t, beginner.Objectives, advanced.Objectives)
	assert.Equal(t, []string{
		"Understand core Chess concepts",
		"Apply Chess principles in practical scenarios",
		"Build real-world Chess projects",
		"Master industry-standard tools and technologies",
	}, beginner.Objectives)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate("Rust", domain.DifficultyBeginner, testNow)
	require.NoError(t, err)
	b, err := Generate("Rust", domain.DifficultyBeginner, testNow)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "each plan gets a fresh id")
	b.ID = a.ID
	assert.Equal(t, a, b)
}

func TestGenerate_PlansDoNotShareState(t *testing.T) {
	a, err := Generate("Rust", domain.DifficultyBeginner, testNow)
	require.NoError(t, err)
	b, err := Generate("Rust", domain.DifficultyBeginner, testNow)
	require.NoError(t, err)

	a.Milestones[0].Tasks[0].Completed = true
	assert.False(t, b.Milestones[0].Tasks[0].Completed)
}

func TestGenerate_FieldWithBraces(t *testing.T) {
	plan, err := Generate("C{++}", domain.DifficultyBeginner, testNow)
	require.NoError(t, err)
	assert.Equal(t, "C{++} Fundamentals", plan.Milestones[0].Title)
}
