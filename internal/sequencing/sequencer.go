package sequencing

import "sort"

// Assignment pairs a record with its computed display position.
type Assignment struct {
	Record  Record
	Display Display
}

// seasonCursor tracks the season context established by normal records while
// walking the merged sequence. The established flag keeps "no season yet"
// distinct from season number 0, which is a meaningful value for specials.
type seasonCursor struct {
	season      int
	established bool
}

// Sequence merges the eligible records into one chronological sequence and
// assigns every record a display position.
//
// The sort key is (air date, original season, original episode), so equal air
// dates resolve deterministically by original identity. The sort is stable:
// full duplicates keep their input order, and callers provide input in a
// deterministic order already.
//
// A season boundary is defined only by normal-record transitions; specials
// within a season shift later display episodes without introducing or
// changing the current season. Records sorted before the first normal episode
// have no season context and come back as exclusions.
func Sequence(records []Record) ([]Assignment, []Exclusion) {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Aired.Equal(b.Aired) {
			return a.Aired.Before(b.Aired)
		}
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		return a.Episode < b.Episode
	})

	var (
		cursor      seasonCursor
		counter     int
		assignments []Assignment
		skipped     []Exclusion
	)
	for _, record := range sorted {
		if record.Kind() == KindNormal && (!cursor.established || record.Season != cursor.season) {
			cursor = seasonCursor{season: record.Season, established: true}
			counter = 0
		}
		if !cursor.established {
			skipped = append(skipped, Exclusion{Record: record, Reason: ReasonNoSeasonContext})
			continue
		}
		counter++
		assignments = append(assignments, Assignment{
			Record:  record,
			Display: Display{Season: cursor.season, Episode: counter},
		})
	}
	return assignments, skipped
}
