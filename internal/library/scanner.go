package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindNFOFiles walks root recursively and returns every .nfo file, sorted
// lexicographically so downstream processing is deterministic regardless of
// directory iteration order.
func FindNFOFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".nfo") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// ExtraVideo is a discovered manually managed extra video file.
type ExtraVideo struct {
	Path string
	ID   EpisodeID
}

// FindExtraVideos walks root recursively and returns every video file whose
// name parses as a special at or above minEpisode. Extensions must include the
// leading dot and be lowercase. Results are sorted by path.
func FindExtraVideos(root string, extensions []string, minEpisode int) ([]ExtraVideo, error) {
	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[ext] = struct{}{}
	}

	var videos []ExtraVideo
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if _, ok := extSet[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			return nil
		}
		id, ok := ParseEpisodeID(Stem(entry.Name()))
		if !ok || !id.IsSpecial() || id.Episode < minEpisode {
			return nil
		}
		videos = append(videos, ExtraVideo{Path: path, ID: id})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].Path < videos[j].Path })
	return videos, nil
}

// Stem returns the file name without its extension.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
