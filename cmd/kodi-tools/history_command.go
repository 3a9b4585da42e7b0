package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/JanKremser/kodi-tools/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sequencing runs from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("run history is disabled in the configuration")
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, historyViews(runs))
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.Command,
					run.LibraryRoot,
					strconv.Itoa(run.Processed),
					strconv.Itoa(run.Written),
					strconv.Itoa(run.Skipped),
					strconv.Itoa(run.Excluded),
					strconv.Itoa(run.Failed),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Command", "Library", "Records", "Written", "Skipped", "Excluded", "Failed"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

type historyRunView struct {
	RunID       string    `json:"run_id"`
	Command     string    `json:"command"`
	LibraryRoot string    `json:"library_root"`
	DryRun      bool      `json:"dry_run"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Processed   int       `json:"processed"`
	Written     int       `json:"written"`
	Skipped     int       `json:"skipped"`
	Excluded    int       `json:"excluded"`
	Failed      int       `json:"failed"`
}

func historyViews(runs []history.Run) []historyRunView {
	views := make([]historyRunView, 0, len(runs))
	for _, run := range runs {
		views = append(views, historyRunView{
			RunID:       run.RunID,
			Command:     run.Command,
			LibraryRoot: run.LibraryRoot,
			DryRun:      run.DryRun,
			StartedAt:   run.StartedAt,
			FinishedAt:  run.FinishedAt,
			Processed:   run.Processed,
			Written:     run.Written,
			Skipped:     run.Skipped,
			Excluded:    run.Excluded,
			Failed:      run.Failed,
		})
	}
	return views
}
