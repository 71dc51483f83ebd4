package quiz

import (
	"testing"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	q := Generate("Go", domain.DifficultyBeginner)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "Go beginner Quiz", q.Title)
	assert.Equal(t, "Go", q.Field)
	assert.Equal(t, DefaultTimeLimit, q.TimeLimit)
	require.Len(t, q.Questions, 2)
	assert.Equal(t, 0, q.Questions[0].CorrectAnswer)
	assert.Equal(t, 1, q.Questions[1].CorrectAnswer)
	assert.Contains(t, q.Questions[0].Question, "Go")
	for _, question := range q.Questions {
		assert.Len(t, question.Options, 4)
		assert.Less(t, question.CorrectAnswer, len(question.Options))
		assert.NotEmpty(t, question.Explanation)
	}
}

func TestGenerate_FreshIDs(t *testing.T) {
	a := Generate("Go", domain.DifficultyBeginner)
	b := Generate("Go", domain.DifficultyBeginner)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestWithTimeLimit(t *testing.T) {
	q := WithTimeLimit(Generate("Go", domain.DifficultyAdvanced), 60)
	assert.Equal(t, 60, q.TimeLimit)

	WithTimeLimit(q, 0)
	assert.Equal(t, 60, q.TimeLimit, "non-positive limit is ignored")
}
