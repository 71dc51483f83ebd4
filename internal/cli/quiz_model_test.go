package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/quiz"
	"github.com/alexanderramin/learnpath/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizDriver(t *testing.T, timeLimit int) (*teatest.Driver, *quiz.Run) {
	t.Helper()
	q := quiz.WithTimeLimit(quiz.Generate("Go", domain.DifficultyBeginner), timeLimit)
	run := quiz.NewRun(q)
	d := teatest.New(t, newQuizModel(run), teatest.WithSize(80, 24))
	d.DrainInit()
	return d, run
}

func model(t *testing.T, d *teatest.Driver) quizModel {
	t.Helper()
	m, ok := d.Model.(quizModel)
	require.True(t, ok)
	return m
}

func TestQuizModel_InitialView(t *testing.T) {
	d, run := newQuizDriver(t, 300)
	view := d.View()
	assert.Contains(t, view, "Go beginner Quiz")
	assert.Contains(t, view, "5:00")
	assert.Contains(t, view, "Question 1 of 2")
	assert.Contains(t, view, run.Question().Question)
	assert.Contains(t, view, "next question")
	assert.False(t, d.Quitting)
}

func TestQuizModel_AnswerAllAndFinish(t *testing.T) {
	d, run := newQuizDriver(t, 300)

	d.PressKey('1')
	sel, ok := run.Selected(0)
	require.True(t, ok)
	assert.Equal(t, 0, sel)

	d.PressRight()
	assert.Equal(t, 1, run.Current())
	assert.Equal(t, 0, model(t, d).cursor, "cursor starts at the top of an unanswered question")
	assert.Contains(t, d.View(), "finish quiz")

	d.PressDown()
	d.PressEnter()
	sel, ok = run.Selected(1)
	require.True(t, ok)
	assert.Equal(t, 1, sel)

	d.PressRight()
	assert.True(t, d.Quitting)
	assert.Equal(t, quiz.StateFinished, run.State())
	res, ok := run.Result()
	require.True(t, ok)
	assert.Equal(t, 100.0, res.Score)
	assert.False(t, model(t, d).aborted)
}

func TestQuizModel_PreviousRestoresCursor(t *testing.T) {
	d, run := newQuizDriver(t, 300)

	d.PressDown()
	d.PressSpace()
	d.PressRight()
	d.PressLeft()

	assert.Equal(t, 0, run.Current())
	assert.Equal(t, 1, model(t, d).cursor)

	d.PressUp()
	d.PressUp()
	assert.Equal(t, 0, model(t, d).cursor, "cursor stops at the first option")
}

func TestQuizModel_CountdownExpires(t *testing.T) {
	d, run := newQuizDriver(t, 3)

	d.Tick(tickMsg(time.Now()), 2)
	assert.False(t, d.Quitting)
	assert.Contains(t, d.View(), "0:01")

	d.Tick(tickMsg(time.Now()), 1)
	assert.True(t, d.Quitting)
	assert.True(t, run.TimedOut())
	res, ok := run.Result()
	require.True(t, ok)
	assert.Equal(t, 0, res.Correct)
}

func TestQuizModel_Submit(t *testing.T) {
	d, run := newQuizDriver(t, 300)
	d.PressKey('1')
	d.PressKey('s')

	assert.True(t, d.Quitting)
	res, ok := run.Result()
	require.True(t, ok)
	assert.Equal(t, 1, res.Correct)
	assert.False(t, run.TimedOut())
}

func TestQuizModel_QuitAbandons(t *testing.T) {
	d, run := newQuizDriver(t, 300)
	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.True(t, model(t, d).aborted)
	assert.Equal(t, quiz.StateInProgress, run.State())
}

func TestQuizModel_IgnoresOutOfRangeDigit(t *testing.T) {
	d, run := newQuizDriver(t, 300)
	d.PressKey('9')
	_, ok := run.Selected(0)
	assert.False(t, ok)
}
