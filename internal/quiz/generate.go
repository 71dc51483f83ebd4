// Package quiz generates quizzes, scores answers and tracks a single run
// through a quiz.
package quiz

import (
	"fmt"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/google/uuid"
)

// DefaultTimeLimit is the countdown for a generated quiz, in seconds.
const DefaultTimeLimit = 300

// Generate builds the fixed two-question quiz for a field. The questions
// mention the field but their content does not depend on it.
func Generate(field string, difficulty domain.Difficulty) *domain.Quiz {
	return &domain.Quiz{
		ID:         uuid.New().String(),
		Title:      fmt.Sprintf("%s %s Quiz", field, difficulty),
		Field:      field,
		Difficulty: difficulty,
		TimeLimit:  DefaultTimeLimit,
		Questions: []domain.Question{
			{
				ID:       "1",
				Question: fmt.Sprintf("What is a fundamental concept in %s?", field),
				Options: []string{
					"Core principles and methodologies",
					"Advanced optimization techniques",
					"Industry-specific jargon",
					"Theoretical frameworks only",
				},
				CorrectAnswer: 0,
				Explanation:   "Understanding core principles and methodologies is essential for building a strong foundation in any field.",
			},
			{
				ID:       "2",
				Question: fmt.Sprintf("Which approach is most effective for learning %s?", field),
				Options: []string{
					"Memorizing all concepts",
					"Hands-on practice with real projects",
					"Reading theory only",
					"Watching videos passively",
				},
				CorrectAnswer: 1,
				Explanation:   "Hands-on practice with real projects helps reinforce theoretical knowledge and builds practical skills.",
			},
		},
	}
}

// WithTimeLimit overrides the countdown of q. Non-positive values are ignored.
func WithTimeLimit(q *domain.Quiz, seconds int) *domain.Quiz {
	if seconds > 0 {
		q.TimeLimit = seconds
	}
	return q
}

