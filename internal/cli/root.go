package cli

import (
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth      service.AuthService
	Plans     service.PlanService
	Quizzes   service.QuizService
	Dashboard service.DashboardService

	// DefaultDifficulty is used when --difficulty is not given.
	DefaultDifficulty domain.Difficulty

	// IsInteractive reports whether stdin is a terminal. Forms and the quiz
	// runner are only shown when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultDifficulty() domain.Difficulty {
	if a.DefaultDifficulty.Valid() {
		return a.DefaultDifficulty
	}
	return domain.DifficultyBeginner
}

// NewRootCmd creates the top-level "learnpath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "learnpath",
		Short:         "Personal learning plans, progress tracking and quizzes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSignupCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newDashboardCmd(app),
		newPlanCmd(app),
		newTaskCmd(app),
		newQuizCmd(app),
		newRoadmapsCmd(app),
	)

	return root
}
