package library

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// episodeIDPattern matches the S<season>E<episode> identity convention with an
// optional " - Title" suffix. Letters are case-insensitive; season 00 marks a
// special.
var episodeIDPattern = regexp.MustCompile(`(?i)S(\d+)E(\d+)(?:\s*-\s*(.+))?`)

// EpisodeID is the identity extracted from a file name.
type EpisodeID struct {
	Season  int
	Episode int
	// Title is the optional free-text segment after the identity marker,
	// empty when the name carries none.
	Title string
}

// IsSpecial reports whether the identity denotes a special (season 00).
func (id EpisodeID) IsSpecial() bool {
	return id.Season == 0
}

// Label renders the identity in the conventional S00E00 form.
func (id EpisodeID) Label() string {
	return fmt.Sprintf("S%02dE%02d", id.Season, id.Episode)
}

// ParseEpisodeID extracts season and episode numbers from a file name stem.
// Supported shapes:
//
//	"Show Name - S01E02 - Episode Title"
//	"S00E1000 - Extra Title"
//	"whatever.S02E05"
//
// The boolean is false when the name carries no resolvable identity.
func ParseEpisodeID(name string) (EpisodeID, bool) {
	match := episodeIDPattern.FindStringSubmatch(name)
	if match == nil {
		return EpisodeID{}, false
	}
	season, err := strconv.Atoi(match[1])
	if err != nil {
		return EpisodeID{}, false
	}
	episode, err := strconv.Atoi(match[2])
	if err != nil {
		return EpisodeID{}, false
	}
	return EpisodeID{
		Season:  season,
		Episode: episode,
		Title:   strings.TrimSpace(match[3]),
	}, true
}

// ExtraFolderName builds the per-episode folder name for a manually managed
// extra, without the show name prefix: "S00E1001 - Title".
func ExtraFolderName(id EpisodeID, title string) string {
	return fmt.Sprintf("S%02dE%04d - %s", id.Season, id.Episode, title)
}
