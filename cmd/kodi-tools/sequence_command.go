package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JanKremser/kodi-tools/internal/config"
	"github.com/JanKremser/kodi-tools/internal/history"
	"github.com/JanKremser/kodi-tools/internal/sequencing"
	"github.com/JanKremser/kodi-tools/internal/workflow"
)

func newSequenceCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sequence <path>",
		Short: "Resequence specials chronologically between normal episodes",
		Long: "Scans the library tree for episode NFO files, merges specials into the " +
			"chronological order of their seasons, and writes displayseason/displayepisode " +
			"tags so Kodi presents them in airing order.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			var store *history.Store
			if cfg.History.Enabled {
				store, err = history.Open(cfg)
				if err != nil {
					return fmt.Errorf("open history store: %w", err)
				}
				defer store.Close()
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			runner := workflow.NewRunner(cfg, logger, store)
			report, err := runner.Sequence(runCtx, root, workflow.Options{DryRun: dryRun})
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, sequenceReportView(report))
			}
			printSequenceReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute placements without writing anything")
	return cmd
}

type recordOutcomeView struct {
	Path    string `json:"path"`
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
	Status  string `json:"status"`
	Display string `json:"display,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

type sequenceReportJSON struct {
	RunID    string              `json:"run_id"`
	Root     string              `json:"root"`
	DryRun   bool                `json:"dry_run"`
	Scanned  int                 `json:"scanned"`
	Records  int                 `json:"records"`
	Written  int                 `json:"written"`
	Skipped  int                 `json:"skipped"`
	Excluded int                 `json:"excluded"`
	Failed   int                 `json:"failed"`
	Outcomes []recordOutcomeView `json:"outcomes"`
}

func sequenceReportView(report *workflow.Report) sequenceReportJSON {
	view := sequenceReportJSON{
		RunID:    report.RunID,
		Root:     report.Root,
		DryRun:   report.DryRun,
		Scanned:  report.Scanned,
		Records:  report.Records,
		Written:  report.Written,
		Skipped:  report.Skipped,
		Excluded: report.Excluded,
		Failed:   report.Failed,
		Outcomes: make([]recordOutcomeView, 0, len(report.Outcomes)),
	}
	for _, outcome := range report.Outcomes {
		entry := recordOutcomeView{
			Path:    outcome.Path,
			Season:  outcome.Season,
			Episode: outcome.Episode,
			Status:  string(outcome.Status),
			Reason:  outcome.Reason,
		}
		if outcome.Display != nil {
			entry.Display = displayLabel(*outcome.Display)
		}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}
		view.Outcomes = append(view.Outcomes, entry)
	}
	return view
}

func printSequenceReport(cmd *cobra.Command, report *workflow.Report) {
	out := cmd.OutOrStdout()
	if report.DryRun {
		fmt.Fprintln(out, "Dry run: no files were modified")
	}
	fmt.Fprintf(out, "Scanned %d NFO files, %d episode records\n", report.Scanned, report.Records)

	rows := make([][]string, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		display := ""
		if outcome.Display != nil {
			display = displayLabel(*outcome.Display)
		}
		detail := outcome.Reason
		if outcome.Status == workflow.StatusSkipped {
			detail = "already in place"
		}
		if outcome.Err != nil {
			detail = outcome.Err.Error()
		}
		rows = append(rows, []string{
			fmt.Sprintf("S%02dE%02d", outcome.Season, outcome.Episode),
			string(outcome.Status),
			display,
			detail,
		})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable(
			[]string{"Record", "Status", "Display", "Detail"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
		))
	}
	fmt.Fprintf(out, "Written %d, skipped %d, excluded %d, failed %d\n",
		report.Written, report.Skipped, report.Excluded, report.Failed)
}

func displayLabel(display sequencing.Display) string {
	return fmt.Sprintf("S%02dE%02d", display.Season, display.Episode)
}
