package extras

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JanKremser/kodi-tools/internal/library"
)

// EpisodeMetadata carries the NFO fields that cannot be derived from the file
// name. Users edit the JSON sidecar by hand to fill these in.
type EpisodeMetadata struct {
	Plot     string       `json:"plot"`
	Aired    string       `json:"aired"`
	Rating   string       `json:"rating,omitempty"`
	Director string       `json:"director,omitempty"`
	Credits  []string     `json:"credits,omitempty"`
	Actors   []ActorEntry `json:"actors,omitempty"`
}

// ActorEntry is one cast member in the metadata sidecar.
type ActorEntry struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// Metadata is the JSON sidecar written next to each extra video. It records
// both user-editable NFO fields and generator state such as the thumbnail
// timestamp reused on later runs.
type Metadata struct {
	VideoFile          string          `json:"video_file"`
	Season             int             `json:"season"`
	Episode            int             `json:"episode"`
	Title              string          `json:"title"`
	Metadata           EpisodeMetadata `json:"metadata"`
	ThumbnailTimestamp string          `json:"thumbnail_timestamp,omitempty"`
	NFOCreated         bool            `json:"nfo_created"`
	ThumbCreated       bool            `json:"thumb_created"`
	LastProcessed      string          `json:"last_processed"`
}

// MetadataPath returns the sidecar location for a video file.
func MetadataPath(videoPath string) string {
	return withSuffix(videoPath, ".json")
}

// NFOPath returns the NFO location for a video file.
func NFOPath(videoPath string) string {
	return withSuffix(videoPath, ".nfo")
}

// ThumbnailPath returns the Kodi thumbnail location for a video file.
func ThumbnailPath(videoPath string) string {
	stem := library.Stem(filepath.Base(videoPath))
	return filepath.Join(filepath.Dir(videoPath), stem+"-thumb.jpg")
}

func withSuffix(videoPath, suffix string) string {
	ext := filepath.Ext(videoPath)
	return strings.TrimSuffix(videoPath, ext) + suffix
}

// LoadMetadata reads the sidecar for a video. A missing sidecar is not an
// error; the boolean reports whether one existed.
func LoadMetadata(videoPath string) (Metadata, bool, error) {
	path := MetadataPath(videoPath)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Metadata{}, false, nil
		}
		return Metadata{}, false, fmt.Errorf("read metadata sidecar: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return Metadata{}, false, fmt.Errorf("parse metadata sidecar %s: %w", path, err)
	}
	return meta, true, nil
}

// SaveMetadata writes the sidecar atomically next to the video file.
func SaveMetadata(videoPath string, meta Metadata) error {
	path := MetadataPath(videoPath)
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata sidecar: %w", err)
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write metadata sidecar: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace metadata sidecar: %w", err)
	}
	return nil
}
