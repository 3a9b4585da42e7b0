package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/JanKremser/kodi-tools/internal/config"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.History.Enabled = true
	cfg.History.Path = filepath.Join(dir, "history", "runs.db")
	return &cfg
}

func TestRecordAndRecentRuns(t *testing.T) {
	cfg := newTestConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := Run{
			RunID:       "run-" + string(rune('a'+i)),
			Command:     "sequence",
			LibraryRoot: "/library/show",
			DryRun:      i == 0,
			StartedAt:   base.Add(time.Duration(i) * time.Hour),
			FinishedAt:  base.Add(time.Duration(i)*time.Hour + time.Minute),
			Processed:   10 + i,
			Written:     i,
			Skipped:     10 - i,
		}
		if _, err := store.RecordRun(ctx, run); err != nil {
			t.Fatalf("record run %d: %v", i, err)
		}
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "run-c" || runs[1].RunID != "run-b" {
		t.Fatalf("unexpected ordering: %s, %s", runs[0].RunID, runs[1].RunID)
	}
	if runs[0].Processed != 12 {
		t.Fatalf("unexpected processed count: %d", runs[0].Processed)
	}
	if runs[0].DryRun {
		t.Fatal("third run should not be a dry run")
	}
	if !runs[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("unexpected start time: %v", runs[0].StartedAt)
	}
}

func TestOpenIsReentrant(t *testing.T) {
	cfg := newTestConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := store.RecordRun(context.Background(), Run{RunID: "r", Command: "extras", LibraryRoot: "/x"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(cfg)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.RecentRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run after reopen, got %d", len(runs))
	}
}
