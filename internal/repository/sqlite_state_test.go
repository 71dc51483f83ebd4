package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStateRepo(t *testing.T) *SQLiteStateRepo {
	t.Helper()
	return NewSQLiteStateRepo(testutil.NewTestDB(t))
}

func TestStateRepo_FreshStart(t *testing.T) {
	repo := newStateRepo(t)
	ctx := context.Background()

	u, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	plans, err := repo.LoadPlans(ctx)
	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)

	current, err := repo.LoadCurrentPlan(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestStateRepo_UserRoundTrip(t *testing.T) {
	repo := newStateRepo(t)
	ctx := context.Background()

	u := testutil.NewTestUser("ada@example.com",
		testutil.WithPoints(130),
		testutil.WithBadges(testutil.NewTestBadge("Level 2")))
	require.NoError(t, repo.SaveUser(ctx, u))

	got, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "ada", got.Name)
	assert.Equal(t, 130, got.Points)
	assert.Equal(t, 2, got.Level)
	require.Len(t, got.Badges, 1)
	assert.Equal(t, "Level 2", got.Badges[0].Name)
	assert.True(t, u.JoinedAt.Equal(got.JoinedAt))
	assert.Equal(t, domain.DefaultPreferences(), got.Preferences)
}

func TestStateRepo_SaveUserOverwrites(t *testing.T) {
	repo := newStateRepo(t)
	ctx := context.Background()

	u := testutil.NewTestUser("ada@example.com")
	require.NoError(t, repo.SaveUser(ctx, u))
	u.Points = 40
	require.NoError(t, repo.SaveUser(ctx, u))

	got, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Points)
}

func TestStateRepo_PlansRoundTrip(t *testing.T) {
	repo := newStateRepo(t)
	ctx := context.Background()

	completedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	p1 := testutil.NewTestPlan("Go", testutil.WithCompleted("1-1"))
	p1.Milestones[0].Tasks[0].CompletedAt = &completedAt
	p1.Milestones[0].Tasks[1].Notes = "read the tour"
	p2 := testutil.NewTestPlan("Rust")
	require.NoError(t, repo.SavePlans(ctx, []*domain.LearningPlan{p1, p2}))

	got, err := repo.LoadPlans(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, p1.ID, got[0].ID)
	assert.Equal(t, p2.ID, got[1].ID)

	task := got[0].Milestone("1").Task("1-1")
	require.NotNil(t, task)
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, completedAt.Equal(*task.CompletedAt))
	assert.Equal(t, "read the tour", got[0].Milestones[0].Tasks[1].Notes)
	assert.Nil(t, got[1].Milestones[0].Tasks[0].CompletedAt)
}

func TestStateRepo_SaveNilPlans(t *testing.T) {
	repo := newStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SavePlans(ctx, nil))
	got, err := repo.LoadPlans(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStateRepo_CurrentPlan(t *testing.T) {
	repo := newStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCurrentPlan(ctx, "p1"))
	got, err := repo.LoadCurrentPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", got)

	require.NoError(t, repo.SaveCurrentPlan(ctx, ""))
	got, err = repo.LoadCurrentPlan(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStateRepo_Clear(t *testing.T) {
	repo := newStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveUser(ctx, testutil.NewTestUser("ada@example.com")))
	require.NoError(t, repo.SavePlans(ctx, []*domain.LearningPlan{testutil.NewTestPlan("Go")}))
	require.NoError(t, repo.SaveCurrentPlan(ctx, "p1"))

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx), "clearing twice is fine")

	u, err := repo.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
	plans, err := repo.LoadPlans(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)
	current, err := repo.LoadCurrentPlan(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestStateRepo_CorruptValue(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	_, err := database.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES (?, '{not json', '2025-01-01T00:00:00Z')`, KeyUser)
	require.NoError(t, err)

	_, err = repo.LoadUser(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestStateRepo_WrittenAsCamelCaseJSON(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.SaveUser(ctx, testutil.NewTestUser("ada@example.com")))

	var raw string
	require.NoError(t, database.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, KeyUser).Scan(&raw))
	assert.Contains(t, raw, `"learningPreferences"`)
	assert.Contains(t, raw, `"joinedAt"`)
}
