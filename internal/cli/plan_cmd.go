package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/importer"
	"github.com/alexanderramin/learnpath/internal/service"
	"github.com/alexanderramin/learnpath/internal/template"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create and browse learning plans",
	}

	cmd.AddCommand(
		newPlanCreateCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanUseCmd(app),
		newPlanExportCmd(app),
		newPlanImportCmd(app),
	)

	return cmd
}

func newPlanCreateCmd(app *App) *cobra.Command {
	var field, prebuilt string
	var difficulty domain.Difficulty

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a learning plan for a field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prebuilt != "" {
				r, ok := template.FindRoadmap(prebuilt)
				if !ok {
					return fmt.Errorf("unknown roadmap %q (see `learnpath roadmaps`)", prebuilt)
				}
				field = r.Title
				if !cmd.Flags().Changed("difficulty") {
					difficulty = domain.DifficultyBeginner
				}
			}

			if strings.TrimSpace(field) == "" {
				if !app.interactive() {
					return fmt.Errorf("--field or --prebuilt is required")
				}
				if err := planForm(&field, &difficulty).Run(); err != nil {
					return err
				}
			}

			p, err := app.Plans.Create(cmd.Context(), field, difficulty)
			if errors.Is(err, service.ErrNotLoggedIn) {
				return fmt.Errorf("%w: run `learnpath login` first", err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", formatter.StyleGreen.Render("✔ Created"), formatter.Bold(p.Title), formatter.TruncID(p.ID))
			fmt.Fprintln(out, formatter.FormatPlan(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "What to learn, e.g. \"Rust\"")
	cmd.Flags().Var(newDifficultyValue(app.defaultDifficulty(), &difficulty), "difficulty", "beginner, intermediate or advanced")
	cmd.Flags().StringVar(&prebuilt, "prebuilt", "", "Create a beginner plan from a prebuilt roadmap")
	cmd.MarkFlagsMutuallyExclusive("field", "prebuilt")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List learning plans",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plans, err := app.Plans.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(plans) == 0 {
				fmt.Fprintln(out, formatter.Dim("No plans yet. Create one with `learnpath plan create --field NAME`."))
				return nil
			}

			var currentID string
			if cur, err := app.Plans.Current(ctx); err == nil {
				currentID = cur.ID
			} else if !errors.Is(err, service.ErrNoCurrentPlan) {
				return err
			}

			fmt.Fprintln(out, formatter.FormatPlanList(plans, currentID))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show a plan's milestones and tasks (default: current plan)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			p, err := app.Plans.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(p))
			return nil
		},
	}
}

func newPlanUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use ID",
		Short: "Select the current plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Plans.Use(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now using %s %s\n", formatter.Bold(p.Title), formatter.TruncID(p.ID))
			return nil
		},
	}
}

func newPlanExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [ID]",
		Short: "Write a plan as JSON (default: current plan, to stdout)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			f, err := app.Plans.Export(cmd.Context(), id)
			if err != nil {
				return err
			}
			data, err := f.Marshal()
			if err != nil {
				return fmt.Errorf("encoding plan: %w", err)
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", formatter.Bold(f.Plan.Title), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add a plan from a JSON file and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := importer.LoadPlanFile(args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.Import(cmd.Context(), f)
			if errors.Is(err, service.ErrNotLoggedIn) {
				return fmt.Errorf("%w: run `learnpath login` first", err)
			}
			if err != nil {
				return err
			}

			done, total := p.TaskCounts()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				formatter.StyleGreen.Render("✔ Imported"),
				formatter.Bold(p.Title),
				formatter.TruncID(p.ID),
				formatter.Dim(fmt.Sprintf("(%d/%d tasks done)", done, total)))
			return nil
		},
	}
}
