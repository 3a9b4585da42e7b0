package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JanKremser/kodi-tools/internal/config"
	"github.com/JanKremser/kodi-tools/internal/extras"
)

func newExtrasCommand(ctx *commandContext) *cobra.Command {
	var (
		forceNFO   bool
		forceThumb bool
		forceAll   bool
		noLabels   bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "extras <path>",
		Short: "Generate NFO files and thumbnails for manually managed extras",
		Long: "Finds special episode videos at or above the configured extras episode " +
			"number, moves each into its own folder, writes a Kodi NFO, and extracts a " +
			"midpoint thumbnail with an optional content label burned in.",
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

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			gen := extras.NewGenerator(cfg, logger, extras.Options{
				ForceNFO:   forceNFO || forceAll,
				ForceThumb: forceThumb || forceAll,
				Labels:     cfg.Extras.Labels && !noLabels,
				DryRun:     dryRun,
			})
			report, err := gen.Run(runCtx, root)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, extrasReportView(report))
			}
			printExtrasReport(cmd, report, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceNFO, "force-nfo", false, "Rewrite NFO files even when they exist")
	cmd.Flags().BoolVar(&forceThumb, "force-thumb", false, "Recreate thumbnails even when they exist")
	cmd.Flags().BoolVar(&forceAll, "force-all", false, "Rewrite NFO files and thumbnails")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "Skip burning content labels onto thumbnails")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned work without touching the library")
	cmd.MarkFlagsMutuallyExclusive("force-nfo", "force-thumb", "force-all")
	return cmd
}

type extraOutcomeView struct {
	Video     string `json:"video"`
	Identity  string `json:"identity"`
	Title     string `json:"title"`
	Moved     bool   `json:"moved"`
	NFO       bool   `json:"nfo_written"`
	Thumbnail bool   `json:"thumbnail_written"`
	Label     string `json:"label,omitempty"`
	Error     string `json:"error,omitempty"`
}

type extrasReportJSON struct {
	Root      string             `json:"root"`
	Processed int                `json:"processed"`
	Failed    int                `json:"failed"`
	Outcomes  []extraOutcomeView `json:"outcomes"`
}

func extrasReportView(report *extras.Report) extrasReportJSON {
	view := extrasReportJSON{
		Root:      report.Root,
		Processed: report.Processed,
		Failed:    report.Failed,
		Outcomes:  make([]extraOutcomeView, 0, len(report.Outcomes)),
	}
	for _, outcome := range report.Outcomes {
		entry := extraOutcomeView{
			Video:     outcome.VideoPath,
			Identity:  outcome.ID.Label(),
			Title:     outcome.Title,
			Moved:     outcome.Moved,
			NFO:       outcome.NFO,
			Thumbnail: outcome.Thumbnail,
			Label:     outcome.Label,
		}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}
		view.Outcomes = append(view.Outcomes, entry)
	}
	return view
}

func printExtrasReport(cmd *cobra.Command, report *extras.Report, dryRun bool) {
	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(out, "Dry run: no files were modified")
	}
	if len(report.Outcomes) == 0 {
		fmt.Fprintln(out, "No extra videos found")
		return
	}

	rows := make([][]string, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		detail := outcome.Label
		if outcome.Err != nil {
			detail = outcome.Err.Error()
		}
		rows = append(rows, []string{
			outcome.ID.Label(),
			filepath.Base(outcome.VideoPath),
			yesNo(outcome.Moved),
			yesNo(outcome.NFO),
			yesNo(outcome.Thumbnail),
			detail,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Identity", "Video", "Moved", "NFO", "Thumb", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	fmt.Fprintf(out, "Processed %d, failed %d\n", report.Processed, report.Failed)
}
