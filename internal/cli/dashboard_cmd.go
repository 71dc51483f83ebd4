package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/service"
	"github.com/alexanderramin/learnpath/internal/template"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"status"},
		Short:   "Show points, level, badges and the current plan",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Dashboard.Summary(cmd.Context())
			if errors.Is(err, service.ErrNotLoggedIn) {
				return fmt.Errorf("%w: run `learnpath login` first", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(summary))
			return nil
		},
	}
}

func newRoadmapsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roadmaps",
		Short: "List prebuilt roadmaps for `plan create --prebuilt`",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRoadmaps(template.Roadmaps()))
			return nil
		},
	}
}
