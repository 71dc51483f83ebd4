package quiz

import (
	"testing"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	q := Generate("Rust", domain.DifficultyIntermediate)

	cases := []struct {
		name    string
		answers []*int
		correct int
		score   float64
	}{
		{"all correct", Answers(0, 1), 2, 100},
		{"first correct", Answers(0, 2), 1, 50},
		{"second correct", Answers(-1, 1), 1, 50},
		{"all wrong", Answers(3, 3), 0, 0},
		{"none answered", Answers(-1, -1), 0, 0},
		{"nil answers", nil, 0, 0},
		{"short answers", Answers(0), 1, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Score(q, tc.answers)
			assert.Equal(t, 2, res.Total)
			assert.Equal(t, tc.correct, res.Correct)
			assert.InDelta(t, tc.score, res.Score, 0.001)
		})
	}
}

func TestScore_PerQuestion(t *testing.T) {
	res := Score(Generate("Rust", domain.DifficultyBeginner), Answers(2, 1))
	assert.Equal(t, []bool{false, true}, res.PerQuestion)
}

func TestScore_EmptyQuiz(t *testing.T) {
	res := Score(&domain.Quiz{}, Answers(0))
	assert.Equal(t, 0, res.Total)
	assert.Zero(t, res.Score)
}

func TestResultPoints(t *testing.T) {
	assert.Equal(t, 67, Result{Score: 200.0 / 3}.Points())
	assert.Equal(t, 33, Result{Score: 100.0 / 3}.Points())
	assert.Equal(t, 100, Result{Score: 100}.Points())
}

func TestAnswers(t *testing.T) {
	a := Answers(2, -1, 0)
	assert.Len(t, a, 3)
	assert.Equal(t, 2, *a[0])
	assert.Nil(t, a[1])
	assert.Equal(t, 0, *a[2])
}
