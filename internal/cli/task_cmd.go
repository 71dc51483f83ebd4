package cli

import (
	"fmt"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Complete tasks and take notes",
	}

	cmd.AddCommand(
		newTaskToggleCmd(app),
		newTaskNoteCmd(app),
	)

	return cmd
}

func newTaskToggleCmd(app *App) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:     "toggle MILESTONE TASK",
		Aliases: []string{"done"},
		Short:   "Mark a task complete, or reopen it",
		Example: "  learnpath task toggle 1 1-2",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Plans.ToggleTask(cmd.Context(), planID, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatToggle(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID or prefix (default: current plan)")

	return cmd
}

func newTaskNoteCmd(app *App) *cobra.Command {
	var planID, notes string
	var sentiment domain.Sentiment

	cmd := &cobra.Command{
		Use:   "note MILESTONE TASK",
		Short: "Attach notes and a sentiment tag to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Plans.SetNote(cmd.Context(), planID, args[0], args[1], notes, sentiment)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("Saved note on %s %s", formatter.Dim(task.ID), formatter.Bold(task.Title))
			if icon := formatter.SentimentIcon(task.Sentiment); icon != "" {
				line += " " + icon
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID or prefix (default: current plan)")
	cmd.Flags().StringVar(&notes, "notes", "", "Note text")
	cmd.Flags().Var((*sentimentValue)(&sentiment), "sentiment", "positive, neutral or negative")
	_ = cmd.MarkFlagRequired("notes")

	return cmd
}
