package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/quiz"
	"github.com/alexanderramin/learnpath/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Test yourself with a timed quiz",
	}

	cmd.AddCommand(
		newQuizStartCmd(app),
		newQuizTakeCmd(app),
		newQuizHistoryCmd(app),
	)

	return cmd
}

// quizFlags are shared by start and take. An empty field falls back to the
// current plan's field and difficulty.
type quizFlags struct {
	field      string
	difficulty domain.Difficulty
}

func (f *quizFlags) register(cmd *cobra.Command, app *App) {
	cmd.Flags().StringVar(&f.field, "field", "", "Quiz topic (default: the current plan's field)")
	cmd.Flags().Var(newDifficultyValue(app.defaultDifficulty(), &f.difficulty), "difficulty", "beginner, intermediate or advanced")
}

func (f *quizFlags) start(cmd *cobra.Command, app *App) (*quiz.Run, error) {
	field, difficulty := f.field, f.difficulty
	if strings.TrimSpace(field) == "" {
		cur, err := app.Plans.Current(cmd.Context())
		if errors.Is(err, service.ErrNoCurrentPlan) {
			return nil, fmt.Errorf("--field is required when no plan is selected")
		}
		if err != nil {
			return nil, err
		}
		field = cur.Field
		if !cmd.Flags().Changed("difficulty") {
			difficulty = cur.Difficulty
		}
	}
	return app.Quizzes.Start(field, difficulty)
}

func completeQuiz(cmd *cobra.Command, app *App, run *quiz.Run) error {
	out, err := app.Quizzes.Complete(cmd.Context(), run)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuizResult(run.Quiz(), run.Answers(), out))
	return nil
}

func newQuizStartCmd(app *App) *cobra.Command {
	var flags quizFlags

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Take a quiz interactively with a countdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("%w: use `learnpath quiz take --answers ...`", errNotInteractive)
			}
			run, err := flags.start(cmd, app)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newQuizModel(run),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running quiz: %w", err)
			}
			if m, ok := final.(quizModel); ok && m.aborted && run.State() != quiz.StateFinished {
				return errQuizAbandoned
			}
			run.Finish()
			return completeQuiz(cmd, app, run)
		},
	}

	flags.register(cmd, app)
	return cmd
}

func newQuizTakeCmd(app *App) *cobra.Command {
	var flags quizFlags
	var answers []int

	cmd := &cobra.Command{
		Use:   "take",
		Short: "Answer a quiz in one go",
		Long: `Answer a quiz without the interactive runner. Answers are zero-based
option indexes in question order; -1 leaves a question unanswered.`,
		Example: "  learnpath quiz take --field Rust --answers 0,1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := flags.start(cmd, app)
			if err != nil {
				return err
			}
			total := len(run.Quiz().Questions)
			if len(answers) > total {
				return fmt.Errorf("got %d answers for %d questions", len(answers), total)
			}

			for i, a := range answers {
				if a >= 0 {
					if err := run.Select(a); err != nil {
						return fmt.Errorf("answer %d: %w", i+1, err)
					}
				}
				run.Next()
			}
			run.Finish()
			return completeQuiz(cmd, app, run)
		},
	}

	flags.register(cmd, app)
	cmd.Flags().IntSliceVar(&answers, "answers", nil, "Comma-separated option indexes, e.g. 0,1")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func newQuizHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent quiz attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			attempts, err := app.Quizzes.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(attempts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No quizzes taken yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuizHistory(attempts))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum attempts to show (0 for all)")
	return cmd
}
