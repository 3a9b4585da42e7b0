// Package workflow orchestrates sequencing runs over a library tree: it
// acquires the per-library lock, collects episode records from NFO files,
// drives the sequencing engine, and writes back display tags and side-car
// caches for specials.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/JanKremser/kodi-tools/internal/config"
	"github.com/JanKremser/kodi-tools/internal/history"
	"github.com/JanKremser/kodi-tools/internal/library"
	"github.com/JanKremser/kodi-tools/internal/logging"
	"github.com/JanKremser/kodi-tools/internal/nfo"
	"github.com/JanKremser/kodi-tools/internal/sequencing"
	"github.com/JanKremser/kodi-tools/internal/services"
	"github.com/JanKremser/kodi-tools/internal/sidecar"
)

// lockFileName sits at the library root and serializes concurrent runs over
// the same tree.
const lockFileName = ".kodi-tools.lock"

// Options controls a single sequencing run.
type Options struct {
	// DryRun computes and reports everything but writes nothing.
	DryRun bool
}

// RecordStatus is the per-record outcome of a run.
type RecordStatus string

const (
	// StatusWritten means display tags and the side-car cache were rewritten.
	StatusWritten RecordStatus = "written"
	// StatusSkipped means the cached display already matched the computed one.
	StatusSkipped RecordStatus = "skipped"
	// StatusExcluded means the record did not take part in sequencing.
	StatusExcluded RecordStatus = "excluded"
	// StatusFailed means a record-local write error occurred.
	StatusFailed RecordStatus = "failed"
)

// RecordOutcome reports what happened to one special record.
type RecordOutcome struct {
	Path    string
	Season  int
	Episode int
	Status  RecordStatus
	// Display is the computed position, nil for exclusions.
	Display *sequencing.Display
	// Reason is set for exclusions.
	Reason string
	Err    error
}

// Report summarizes a sequencing run.
type Report struct {
	RunID      string
	Root       string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	// Scanned counts NFO files seen; Records counts those that resolved to
	// an episode identity.
	Scanned  int
	Records  int
	Written  int
	Skipped  int
	Excluded int
	Failed   int
	Outcomes []RecordOutcome
}

// Runner executes sequencing runs. A nil history store disables journaling.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *history.Store
}

// NewRunner builds a runner. A nil logger disables logging.
func NewRunner(cfg *config.Config, logger *slog.Logger, store *history.Store) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "sequence"),
		store:  store,
	}
}

// Sequence runs the full pipeline over the library rooted at root. Errors on
// individual records are recorded in their outcomes; only lock, scan, and
// configuration failures abort the run.
func (r *Runner) Sequence(ctx context.Context, root string, opts Options) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, services.Wrap(services.ErrValidation, "sequence", "root",
			fmt.Sprintf("library root is not a directory: %s", root), err)
	}

	lock := flock.New(filepath.Join(root, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "sequence", "lock", root, err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrTransient, "sequence", "lock",
			"another run holds the library lock", nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release library lock", logging.Error(err))
		}
	}()

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)

	report := &Report{
		RunID:     runID,
		Root:      root,
		DryRun:    opts.DryRun,
		StartedAt: time.Now(),
	}
	logger.Info("run started",
		logging.String("root", root),
		logging.Bool("dry_run", opts.DryRun))

	records, episodes, outcomes := r.collect(ctx, root, report)
	report.Outcomes = outcomes

	eligible, filtered := sequencing.Filter(records, r.cfg.Sequencing.OutOfBandThreshold)
	assignments, unplaced := sequencing.Sequence(eligible)
	for _, excl := range append(filtered, unplaced...) {
		report.Outcomes = append(report.Outcomes, excludedOutcome(excl))
		report.Excluded++
		logger.Debug("record excluded",
			logging.String(logging.FieldRecord, excl.Record.Path),
			logging.String(logging.FieldReason, string(excl.Reason)))
	}

	for _, assignment := range assignments {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = time.Now()
			return report, err
		}
		if assignment.Record.Kind() != sequencing.KindSpecial {
			continue
		}
		outcome := r.applyAssignment(ctx, assignment, episodes[assignment.Record.Path], opts.DryRun)
		switch outcome.Status {
		case StatusWritten:
			report.Written++
		case StatusSkipped:
			report.Skipped++
		case StatusFailed:
			report.Failed++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.FinishedAt = time.Now()
	logger.Info("run finished",
		logging.Int("written", report.Written),
		logging.Int("skipped", report.Skipped),
		logging.Int("excluded", report.Excluded),
		logging.Int("failed", report.Failed),
		logging.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)))

	if err := r.journal(ctx, report); err != nil {
		logger.Warn("failed to journal run", logging.Error(err))
	}
	return report, nil
}

// collect loads every NFO under root into a sequencing record. Files without
// an episode identity or with unreadable content become exclusions; parsed
// documents are retained so the write phase does not re-read them.
func (r *Runner) collect(ctx context.Context, root string, report *Report) ([]sequencing.Record, map[string]*nfo.Episode, []RecordOutcome) {
	logger := logging.WithContext(services.WithStage(ctx, "collect"), r.logger)
	paths, err := library.FindNFOFiles(root)
	if err != nil {
		logger.Warn("library scan incomplete", logging.Error(err))
	}
	report.Scanned = len(paths)

	var (
		records  []sequencing.Record
		episodes = make(map[string]*nfo.Episode)
		outcomes []RecordOutcome
	)
	for _, path := range paths {
		id, ok := library.ParseEpisodeID(library.Stem(filepath.Base(path)))
		if !ok {
			continue
		}

		ep, err := nfo.Load(path)
		if err != nil {
			outcomes = append(outcomes, RecordOutcome{
				Path:    path,
				Season:  id.Season,
				Episode: id.Episode,
				Status:  StatusExcluded,
				Reason:  string(sequencing.ReasonUnparseableRecord),
				Err:     err,
			})
			report.Excluded++
			logger.Warn("unreadable record",
				logging.String(logging.FieldRecord, path),
				logging.Error(err))
			continue
		}

		record := sequencing.Record{
			Path:    path,
			Season:  id.Season,
			Episode: id.Episode,
		}
		if aired, ok := ep.AiredDate(); ok {
			record.Aired = aired
			record.HasAired = true
		}

		if id.IsSpecial() {
			entry, found, err := sidecar.Load(sidecar.PathFor(path))
			if err != nil {
				logger.Warn("unreadable side-car, will rewrite",
					logging.String(logging.FieldRecord, path),
					logging.Error(err))
			} else if found {
				record.CachedDisplay = &sequencing.Display{
					Season:  entry.DisplaySeason,
					Episode: entry.DisplayEpisode,
				}
				// The cached air date wins over the NFO: it reflects what
				// the previous placement was computed from.
				if aired, err := time.Parse(nfo.AiredLayout, entry.Aired); err == nil {
					record.Aired = aired
					record.HasAired = true
				}
			}
		}

		records = append(records, record)
		episodes[path] = ep
	}
	report.Records = len(records)
	return records, episodes, outcomes
}

// applyAssignment converges one special against its cache and rewrites the
// NFO and side-car when needed.
func (r *Runner) applyAssignment(ctx context.Context, assignment sequencing.Assignment, ep *nfo.Episode, dryRun bool) RecordOutcome {
	record := assignment.Record
	display := assignment.Display
	ctx = services.WithRecord(services.WithStage(ctx, "write"), record.Path)
	logger := logging.WithContext(ctx, r.logger)
	outcome := RecordOutcome{
		Path:    record.Path,
		Season:  record.Season,
		Episode: record.Episode,
		Display: &display,
	}

	if sequencing.Converge(display, record.CachedDisplay) == sequencing.DecisionSkip {
		outcome.Status = StatusSkipped
		logger.Debug("already in place",
			logging.String("display", fmt.Sprintf("S%02dE%02d", display.Season, display.Episode)))
		return outcome
	}

	if dryRun {
		outcome.Status = StatusWritten
		logger.Info("would write display tags",
			logging.String("display", fmt.Sprintf("S%02dE%02d", display.Season, display.Episode)))
		return outcome
	}

	ep.SetDisplay(display.Season, display.Episode)
	if err := ep.Save(record.Path); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrPersistence, "sequence", "write", record.Path, err)
		return outcome
	}

	entry := sidecar.Entry{
		OriginalSeason:  record.Season,
		OriginalEpisode: record.Episode,
		Aired:           record.Aired.Format(nfo.AiredLayout),
		DisplaySeason:   display.Season,
		DisplayEpisode:  display.Episode,
	}
	if err := sidecar.Save(sidecar.PathFor(record.Path), entry); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrPersistence, "sequence", "cache", record.Path, err)
		return outcome
	}

	outcome.Status = StatusWritten
	logger.Info("display tags written",
		logging.String("display", fmt.Sprintf("S%02dE%02d", display.Season, display.Episode)))
	return outcome
}

// journal records the finished run in the history store. Dry runs are not
// journaled; they change nothing worth auditing.
func (r *Runner) journal(ctx context.Context, report *Report) error {
	if r.store == nil || report.DryRun || !r.cfg.History.Enabled {
		return nil
	}
	_, err := r.store.RecordRun(ctx, history.Run{
		RunID:       report.RunID,
		Command:     "sequence",
		LibraryRoot: report.Root,
		DryRun:      report.DryRun,
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Processed:   report.Records,
		Written:     report.Written,
		Skipped:     report.Skipped,
		Excluded:    report.Excluded,
		Failed:      report.Failed,
	})
	return err
}

func excludedOutcome(excl sequencing.Exclusion) RecordOutcome {
	return RecordOutcome{
		Path:    excl.Record.Path,
		Season:  excl.Record.Season,
		Episode: excl.Record.Episode,
		Status:  StatusExcluded,
		Reason:  string(excl.Reason),
	}
}
