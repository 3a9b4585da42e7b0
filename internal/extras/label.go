package extras

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// labelKeywords maps title substrings to the badge rendered onto thumbnails.
// Order matters: more specific phrases must come before their prefixes, for
// example "inside the episode" before "inside".
var labelKeywords = []struct {
	keyword string
	label   string
}{
	{"trailer", "TRAILER"},
	{"teaser", "TEASER"},
	{"making of", "MAKING OF"},
	{"interview", "INTERVIEW"},
	{"behind the scenes", "BEHIND THE SCENES"},
	{"deleted scene", "DELETED SCENE"},
	{"gag reel", "GAG REEL"},
	{"blooper", "BLOOPERS"},
	{"featurette", "FEATURETTE"},
	{"preview", "PREVIEW"},
	{"special", "SPECIAL"},
	{"recap", "RECAP"},
	{"inside the episode", "INSIDE THE EPISODE"},
	{"insides", "INSIDES"},
	{"inside", "INSIDE"},
}

var (
	seasonRefPattern  = regexp.MustCompile(`(?i)(staffel|season)\s*0*(\d+)`)
	episodeRefPattern = regexp.MustCompile(`(?i)episode\s*0*(\d+)`)
	numberRefPattern  = regexp.MustCompile(`#\s*0*(\d+)`)
	customPattern     = regexp.MustCompile(`''(.*?)''`)
)

var upper = cases.Upper(language.Und)

// Label is the thumbnail badge derived from an extra's title.
type Label struct {
	// SeasonTag is an optional "S02" or "S02-E05" reference rendered in the
	// top right corner, empty when the title carries no season reference.
	SeasonTag string
	// Text is the badge rendered in the bottom left corner.
	Text string
}

// DetectLabel inspects an extra's title and derives the thumbnail badge.
// Recognized signals, in order of precedence:
//
//   - a known keyword such as "trailer" or "interview"
//   - a custom label quoted as ''Label'' anywhere in the title
//   - a bare season/episode reference or "#N" counter, which falls back to a
//     generic SPECIAL badge
//
// The boolean is false when the title carries no label signal at all.
func DetectLabel(title string) (Label, bool) {
	lower := strings.ToLower(title)

	seasonTag := ""
	if m := seasonRefPattern.FindStringSubmatch(title); m != nil {
		if n, err := strconv.Atoi(m[2]); err == nil {
			seasonTag = fmt.Sprintf("S%02d", n)
		}
	}
	if m := episodeRefPattern.FindStringSubmatch(title); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			seasonTag = fmt.Sprintf("%s-E%02d", seasonTag, n)
		}
	}

	numberSuffix := ""
	if m := numberRefPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			numberSuffix = fmt.Sprintf(" #%02d", n)
		}
	}

	for _, entry := range labelKeywords {
		if strings.Contains(lower, entry.keyword) {
			return Label{SeasonTag: seasonTag, Text: entry.label + numberSuffix}, true
		}
	}

	if m := customPattern.FindStringSubmatch(title); m != nil {
		text := strings.TrimSpace(upper.String(m[1]) + numberSuffix)
		if text != "" {
			return Label{SeasonTag: seasonTag, Text: text}, true
		}
	}

	if seasonTag != "" || numberSuffix != "" {
		return Label{SeasonTag: seasonTag, Text: strings.TrimSpace("SPECIAL" + numberSuffix)}, true
	}
	return Label{}, false
}
