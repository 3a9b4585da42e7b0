package sequencing

import "time"

// Kind classifies a record by its original season number.
type Kind int

const (
	// KindNormal is a regularly numbered story episode.
	KindNormal Kind = iota
	// KindSpecial is bonus content carried in season 00.
	KindSpecial
)

func (k Kind) String() string {
	if k == KindSpecial {
		return "special"
	}
	return "normal"
}

// Display is a synthetic (season, episode) presentation pair. It never
// replaces a record's original identity.
type Display struct {
	Season  int
	Episode int
}

// Record is one episode catalog entry as seen by the sequencing engine.
// Records are constructed fresh each run and discarded afterwards; only the
// cached display pair survives between runs, via the side-car cache.
type Record struct {
	// Path is the opaque stable identity of the underlying catalog entry.
	Path string
	// Season and Episode are the record's original identity, never mutated.
	Season  int
	Episode int
	// Aired is the resolved air date; HasAired is false when the record
	// carries none, which excludes it from sequencing for this run.
	Aired    time.Time
	HasAired bool
	// CachedDisplay is the display pair persisted by a prior run, nil when
	// the record was never sequenced. Only meaningful for specials.
	CachedDisplay *Display
}

// Kind derives the record classification: season 00 marks a special.
func (r Record) Kind() Kind {
	if r.Season == 0 {
		return KindSpecial
	}
	return KindNormal
}
