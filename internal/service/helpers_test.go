package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/learnpath/internal/db"
	"github.com/alexanderramin/learnpath/internal/repository"
	"github.com/alexanderramin/learnpath/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db        *sql.DB
	session   *Session
	state     *repository.SQLiteStateRepo
	auth      AuthService
	plans     PlanService
	quizzes   QuizService
	dashboard DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newTestEnvWithUoW(t, database, db.NewSQLiteUnitOfWork(database))
}

func newTestEnvWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork) *testEnv {
	t.Helper()
	session := NewSession()
	return &testEnv{
		db:        database,
		session:   session,
		state:     repository.NewSQLiteStateRepo(database),
		auth:      NewAuthService(session, uow),
		plans:     NewPlanService(session, uow),
		quizzes:   NewQuizService(session, repository.NewSQLiteQuizAttemptRepo(database), uow, 60),
		dashboard: NewDashboardService(session),
	}
}

// login signs in ada@example.com and returns the env for chaining.
func (e *testEnv) login(t *testing.T) *testEnv {
	t.Helper()
	_, err := e.auth.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	return e
}

// setPoints overwrites the signed-in user's points and level in memory.
func (e *testEnv) setPoints(points int) {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	e.session.user.Points = points
	e.session.user.Level = points/100 + 1
}

// reload reads the session back from the database.
func (e *testEnv) reload(t *testing.T) *Session {
	t.Helper()
	s, err := LoadSession(context.Background(), e.state)
	require.NoError(t, err)
	return s
}
