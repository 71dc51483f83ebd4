package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/service"
)

// ScoreStyle colors a quiz score: green from 80, yellow from 50, red below.
func ScoreStyle(score float64) string {
	text := Percent(score)
	switch {
	case score >= 80:
		return StyleGreen.Bold(true).Render(text)
	case score >= 50:
		return StyleYellow.Bold(true).Render(text)
	default:
		return StyleRed.Bold(true).Render(text)
	}
}

// FormatQuizResult reviews each question against the chosen answers and
// summarises the score and rewards.
func FormatQuizResult(q *domain.Quiz, answers []*int, out *service.QuizOutcome) string {
	var b strings.Builder

	for i, question := range q.Questions {
		correct := out.Result.PerQuestion[i]
		mark := StyleRed.Render("✘")
		if correct {
			mark = StyleGreen.Render("✔")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, Bold(fmt.Sprintf("%d. %s", i+1, question.Question))))

		chosen := Dim("(no answer)")
		if i < len(answers) && answers[i] != nil && *answers[i] >= 0 && *answers[i] < len(question.Options) {
			chosen = question.Options[*answers[i]]
		}
		b.WriteString(fmt.Sprintf("   %s %s\n", Dim("your answer:"), StyleFg.Render(chosen)))
		if !correct {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("correct:    "), StyleGreen.Render(question.Options[question.CorrectAnswer])))
		}
		b.WriteString("   " + Dim(question.Explanation) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s\n", Dim("score"), ScoreStyle(out.Result.Score),
		Dim(fmt.Sprintf("(%d of %d correct)", out.Result.Correct, out.Result.Total))))
	if out.Attempt.TimedOut {
		b.WriteString(StyleYellow.Render("Time ran out; unanswered questions count as incorrect.") + "\n")
	}
	if out.User != nil {
		b.WriteString(fmt.Sprintf("%s +%d  %s %d  %s %d\n",
			Dim("points"), out.Attempt.PointsAwarded, Dim("total"), out.User.Points, Dim("level"), out.User.Level))
	} else {
		b.WriteString(Dim("Log in to earn points for quizzes.") + "\n")
	}
	if len(out.NewBadges) > 0 {
		b.WriteString(FormatNewBadges(out.NewBadges))
	}

	return RenderBox(q.Title, strings.TrimRight(b.String(), "\n"))
}

// FormatQuizHistory renders past attempts, newest first.
func FormatQuizHistory(attempts []*domain.QuizAttempt) string {
	headers := []string{"WHEN", "FIELD", "DIFFICULTY", "SCORE", "POINTS", ""}
	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		note := ""
		if a.TimedOut {
			note = StyleYellow.Render("timed out")
		}
		rows = append(rows, []string{
			Dim(HumanDate(a.FinishedAt)),
			Bold(a.Field),
			DifficultyBadge(a.Difficulty),
			ScoreStyle(a.Score) + Dim(fmt.Sprintf(" %d/%d", a.Correct, a.Total)),
			fmt.Sprintf("+%d", a.PointsAwarded),
			note,
		})
	}
	return RenderBox("Quiz history", RenderTable(headers, rows))
}
