package nfo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// AiredLayout is the fixed date pattern Kodi uses for the aired field.
const AiredLayout = "2006-01-02"

// Actor describes one cast entry in an episodedetails document.
type Actor struct {
	Name string `xml:"name"`
	Role string `xml:"role,omitempty"`
}

// RawElement preserves an element this tool does not consume (uniqueid,
// showtitle, runtime, thumb and whatever else a scraper wrote) so a rewrite
// carries it through verbatim.
type RawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

// Episode is a typed view of a Kodi episodedetails NFO document.
//
// Season and Episode are the record's original identity and are never mutated
// by this tool; DisplaySeason and DisplayEpisode are the synthetic
// presentation tags the sequencer maintains for specials.
type Episode struct {
	XMLName xml.Name `xml:"episodedetails"`

	Title    string   `xml:"title"`
	Season   int      `xml:"season"`
	Episode  int      `xml:"episode"`
	Aired    string   `xml:"aired,omitempty"`
	Plot     string   `xml:"plot,omitempty"`
	Rating   string   `xml:"rating,omitempty"`
	Director string   `xml:"director,omitempty"`
	Credits  []string `xml:"credits,omitempty"`
	Actors   []Actor  `xml:"actor,omitempty"`

	DisplaySeason  *int `xml:"displayseason,omitempty"`
	DisplayEpisode *int `xml:"displayepisode,omitempty"`

	Extra []RawElement `xml:",any"`
}

// Load reads and parses an episodedetails document from disk.
func Load(path string) (*Episode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read nfo: %w", err)
	}
	return Parse(data)
}

// Parse decodes an episodedetails document.
func Parse(data []byte) (*Episode, error) {
	var ep Episode
	if err := xml.Unmarshal(data, &ep); err != nil {
		return nil, fmt.Errorf("parse nfo: %w", err)
	}
	return &ep, nil
}

// AiredDate returns the parsed air date. The boolean is false when the field
// is absent or does not match the fixed layout.
func (e *Episode) AiredDate() (time.Time, bool) {
	value := strings.TrimSpace(e.Aired)
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(AiredLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// SetDisplay sets or overwrites the displayseason/displayepisode tags.
func (e *Episode) SetDisplay(season, episode int) {
	s, ep := season, episode
	e.DisplaySeason = &s
	e.DisplayEpisode = &ep
}

// Save serializes the episode back to disk, replacing the file atomically so
// a failed write never truncates an existing record.
func (e *Episode) Save(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("save nfo: empty path")
	}
	data, err := xml.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal nfo: %w", err)
	}
	payload := append([]byte(xml.Header), data...)
	payload = append(payload, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, payload, 0o644); err != nil {
		return fmt.Errorf("write temp nfo: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace nfo: %w", err)
	}
	return nil
}
