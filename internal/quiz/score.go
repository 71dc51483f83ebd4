package quiz

import (
	"math"

	"github.com/alexanderramin/learnpath/internal/domain"
)

// Result is the scored outcome of a quiz.
type Result struct {
	Correct int
	Total   int
	Score   float64 // percentage, 0-100

	// PerQuestion reports whether each question was answered correctly.
	PerQuestion []bool
}

// Points is the credit a user earns for this result: the rounded score.
func (r Result) Points() int {
	return int(math.Round(r.Score))
}

// Score counts answers equal to each question's correct option. answers is
// indexed by question position; nil entries and missing trailing entries are
// unanswered and never match.
func Score(q *domain.Quiz, answers []*int) Result {
	res := Result{
		Total:       len(q.Questions),
		PerQuestion: make([]bool, len(q.Questions)),
	}
	for i, question := range q.Questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == question.CorrectAnswer {
			res.Correct++
			res.PerQuestion[i] = true
		}
	}
	if res.Total > 0 {
		res.Score = float64(res.Correct) / float64(res.Total) * 100
	}
	return res
}

// Answers converts a dense list of option indexes into the sparse form Score
// expects. A negative index marks a question as unanswered.
func Answers(indexes ...int) []*int {
	out := make([]*int, len(indexes))
	for i, idx := range indexes {
		if idx < 0 {
			continue
		}
		v := idx
		out[i] = &v
	}
	return out
}
