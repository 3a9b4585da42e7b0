package sidecar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry is the convergence cache persisted beside a special record's NFO.
// The key names are part of the on-disk format and must stay stable.
type Entry struct {
	OriginalSeason  int    `json:"original_season"`
	OriginalEpisode int    `json:"original_episode"`
	Aired           string `json:"aired"`
	DisplaySeason   int    `json:"display_season"`
	DisplayEpisode  int    `json:"display_episode"`
	LastModified    string `json:"last_modified"`
}

// PathFor derives the side-car path for an NFO file: episode.nfo ->
// episode.nfo.json.
func PathFor(nfoPath string) string {
	return nfoPath + ".json"
}

// Load reads a side-car entry. The boolean is false when no side-car exists;
// a present but unreadable side-car is an error so the caller can report it
// and fall back to a rewrite.
func Load(path string) (Entry, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("read side-car %s: %w", path, err)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("parse side-car %s: %w", path, err)
	}
	return entry, true, nil
}

// Save writes a side-car entry atomically via a temp file so an interrupted
// run never leaves a truncated cache. LastModified is stamped here.
func Save(path string, entry Entry) error {
	entry.LastModified = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal side-car: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write side-car %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace side-car %s: %w", path, err)
	}
	return nil
}

// Remove deletes a side-car. Removing a missing side-car is not an error;
// absence simply forces a rewrite on the next run.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove side-car %s: %w", path, err)
	}
	return nil
}

// Found pairs a discovered side-car path with its parsed entry.
type Found struct {
	Path  string
	Entry Entry
}

// FindUnder walks root and returns every parseable side-car, sorted by path.
// Unparseable side-cars are skipped, not fatal.
func FindUnder(root string) ([]Found, error) {
	var results []Found
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".nfo.json") {
			return nil
		}
		parsed, ok, loadErr := Load(path)
		if loadErr != nil || !ok {
			return nil
		}
		results = append(results, Found{Path: path, Entry: parsed})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan side-cars under %s: %w", root, err)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}
