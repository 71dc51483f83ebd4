package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/learnpath/internal/db"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestObserver_ToggleTaskEvent(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	session := NewSession()
	rec := &recordingObserver{}
	auth := NewAuthService(session, uow, rec)
	plans := NewPlanService(session, uow, rec)
	ctx := context.Background()

	_, err := auth.Login(ctx, "ada@example.com", "pw")
	require.NoError(t, err)
	p, err := plans.Create(ctx, "Go", domain.DifficultyBeginner)
	require.NoError(t, err)
	_, err = plans.ToggleTask(ctx, p.ID, "1", "1-1")
	require.NoError(t, err)
	_, err = plans.ToggleTask(ctx, p.ID, "1", "nope")
	require.Error(t, err)

	require.Len(t, rec.events, 4)
	assert.Equal(t, "login", rec.events[0].Name)
	assert.Equal(t, "create-plan", rec.events[1].Name)

	toggle := rec.events[2]
	assert.Equal(t, "toggle-task", toggle.Name)
	assert.True(t, toggle.Success)
	assert.Equal(t, true, toggle.Fields["completed"])
	assert.Equal(t, 10, toggle.Fields["points"])

	failed := rec.events[3]
	assert.False(t, failed.Success)
	assert.ErrorIs(t, failed.Err, ErrNotFound)
}

func TestLogUseCaseObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "toggle-task",
		Success: true,
		Fields:  map[string]any{"task_id": "1-1"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "login",
		Err:  errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=toggle-task")
	assert.Contains(t, out, "task_id=1-1")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestObserverFor(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, NoopUseCaseObserver{}, ObserverFor(false, &buf))
	assert.IsType(t, NoopUseCaseObserver{}, ObserverFor(true, nil))
	assert.NotEqual(t, NoopUseCaseObserver{}, ObserverFor(true, &buf))
}
