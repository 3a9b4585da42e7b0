package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/JanKremser/kodi-tools/internal/nfo"
	"github.com/JanKremser/kodi-tools/internal/testsupport"
)

func TestSequenceCommandWritesDisplayTags(t *testing.T) {
	_, configPath := newTestCLIConfig(t, testsupport.WithHistoryDisabled())
	root := t.TempDir()
	testsupport.WriteEpisodeNFO(t, root, "Show - S01E01.nfo",
		nfo.Episode{Title: "One", Season: 1, Episode: 1, Aired: "2020-01-01"})
	special := testsupport.WriteEpisodeNFO(t, root, "Show - S00E01.nfo",
		nfo.Episode{Title: "Bonus", Season: 0, Episode: 1, Aired: "2020-01-15"})

	output, err := runCommand(t, "--config", configPath, "--json", "sequence", root)
	if err != nil {
		t.Fatalf("sequence command failed: %v\n%s", err, output)
	}

	var report sequenceReportJSON
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		t.Fatalf("parse output: %v\n%s", err, output)
	}
	if report.Written != 1 {
		t.Fatalf("expected one write, got %+v", report)
	}

	ep, err := nfo.Load(special)
	if err != nil {
		t.Fatal(err)
	}
	if ep.DisplaySeason == nil || *ep.DisplaySeason != 1 || *ep.DisplayEpisode != 2 {
		t.Fatalf("display tags not written: %+v", ep)
	}
}

func TestSequenceCommandDryRun(t *testing.T) {
	_, configPath := newTestCLIConfig(t, testsupport.WithHistoryDisabled())
	root := t.TempDir()
	testsupport.WriteEpisodeNFO(t, root, "S01E01.nfo",
		nfo.Episode{Title: "One", Season: 1, Episode: 1, Aired: "2020-01-01"})
	special := testsupport.WriteEpisodeNFO(t, root, "S00E01.nfo",
		nfo.Episode{Title: "Bonus", Season: 0, Episode: 1, Aired: "2020-01-15"})

	output, err := runCommand(t, "--config", configPath, "sequence", "--dry-run", root)
	if err != nil {
		t.Fatalf("dry run failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Dry run") {
		t.Fatalf("missing dry run notice:\n%s", output)
	}

	ep, err := nfo.Load(special)
	if err != nil {
		t.Fatal(err)
	}
	if ep.DisplaySeason != nil {
		t.Fatal("dry run must not modify records")
	}
}

func TestSequenceCommandReportsConvergedRecords(t *testing.T) {
	_, configPath := newTestCLIConfig(t, testsupport.WithHistoryDisabled())
	root := t.TempDir()
	testsupport.WriteEpisodeNFO(t, root, "S01E01.nfo",
		nfo.Episode{Title: "One", Season: 1, Episode: 1, Aired: "2020-01-01"})
	testsupport.WriteEpisodeNFO(t, root, "S00E01.nfo",
		nfo.Episode{Title: "Bonus", Season: 0, Episode: 1, Aired: "2020-01-15"})

	if _, err := runCommand(t, "--config", configPath, "sequence", root); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	output, err := runCommand(t, "--config", configPath, "sequence", root)
	if err != nil {
		t.Fatalf("second run failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "already in place") {
		t.Fatalf("converged record not surfaced in table output:\n%s", output)
	}
	if !strings.Contains(output, "skipped 1") {
		t.Fatalf("summary line missing skip count:\n%s", output)
	}
}

func TestSequenceCommandRequiresPath(t *testing.T) {
	_, configPath := newTestCLIConfig(t)
	if _, err := runCommand(t, "--config", configPath, "sequence"); err == nil {
		t.Fatal("expected usage error without a path argument")
	}
}
