package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dbforge/internal/models"
	"dbforge/internal/repositories"
	"dbforge/internal/services"
)

// HistoryCmd returns the history command
func HistoryCmd(rt *Runtime) *cobra.Command {
	var limit int
	var target string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := rt.openHistory()
			if err != nil {
				return err
			}
			defer closeDB()

			runs := services.NewGenerationRunService(repositories.NewGenerationRunRepository(db))
			var list []models.GenerationRun
			if target != "" {
				list, err = runs.ForTarget(cmd.Context(), target, limit)
			} else {
				list, err = runs.Recent(cmd.Context(), limit)
			}
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			if len(list) == 0 {
				fmt.Fprintln(rt.Out, "No generation runs recorded.")
				return nil
			}
			dim := color.New(color.FgHiBlack)
			for _, r := range list {
				dim.Fprintf(rt.Out, "%s  ", r.CreatedAt.Local().Format(time.DateTime))
				fmt.Fprintf(rt.Out, "%s  %s -> %s (%d files)\n", r.Author, r.Tables, r.TargetProject, r.FileCount)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")
	cmd.Flags().StringVar(&target, "project", "", "Only show runs for this target project")

	return cmd
}
