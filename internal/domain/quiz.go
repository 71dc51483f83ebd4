package domain

import "time"

type Quiz struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Field      string     `json:"field"`
	Difficulty Difficulty `json:"difficulty"`
	Questions  []Question `json:"questions"`
	TimeLimit  int        `json:"timeLimit"` // seconds
}

type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuizAttempt records the outcome of one finished quiz run.
type QuizAttempt struct {
	ID            string
	QuizID        string
	Field         string
	Difficulty    Difficulty
	Correct       int
	Total         int
	Score         float64
	PointsAwarded int
	TimedOut      bool
	FinishedAt    time.Time
}
