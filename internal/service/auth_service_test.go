package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_LoginFabricatesUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.auth.Login(ctx, " ada@example.com ", "anything")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "ada", u.Name)
	assert.Equal(t, 0, u.Points)
	assert.Equal(t, 1, u.Level)
	assert.NotNil(t, u.Badges)
	assert.Empty(t, u.Badges)
	assert.Equal(t, domain.DefaultPreferences(), u.Preferences)
	assert.False(t, u.JoinedAt.IsZero())

	persisted := env.reload(t).User()
	require.NotNil(t, persisted)
	assert.Equal(t, u.ID, persisted.ID)
}

func TestAuth_LoginNeverRejects(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.auth.Login(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, u.Name)
}

func TestAuth_SignupUsesName(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.auth.Signup(context.Background(), "Ada Lovelace", "ada@example.com", "pw", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", u.Name)

	u, err = env.auth.Signup(context.Background(), "  ", "grace@example.com", "pw", "pw")
	require.NoError(t, err)
	assert.Equal(t, "grace", u.Name, "blank name falls back to the email local part")
}

func TestAuth_SignupPasswordMismatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Signup(ctx, "Ada", "ada@example.com", "pw", "other")
	require.ErrorIs(t, err, ErrPasswordMismatch)

	assert.Nil(t, env.session.User(), "no state change")
	assert.Nil(t, env.reload(t).User())
}

func TestAuth_LogoutClearsEverything(t *testing.T) {
	env := newTestEnv(t).login(t)
	ctx := context.Background()

	_, err := env.plans.Create(ctx, "Go", domain.DifficultyBeginner)
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx))

	assert.Nil(t, env.session.User())
	assert.Empty(t, env.session.Plans())
	assert.Empty(t, env.session.CurrentPlanID())

	reloaded := env.reload(t)
	assert.Nil(t, reloaded.User())
	assert.Empty(t, reloaded.Plans())
	assert.Empty(t, reloaded.CurrentPlanID())
}

func TestAuth_Current(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Current(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	env.login(t)
	u, err := env.auth.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada", u.Name)
}
