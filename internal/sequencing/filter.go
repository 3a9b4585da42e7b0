package sequencing

// ExclusionReason names why a record was dropped from a run. Exclusions are
// reported, never fatal; the run always continues with the remaining records.
type ExclusionReason string

const (
	// ReasonOutOfBandSpecial marks specials at or above the configured
	// episode threshold, reserved for manually placed extras.
	ReasonOutOfBandSpecial ExclusionReason = "out_of_band_special"
	// ReasonMissingAirDate marks records without a resolvable air date.
	ReasonMissingAirDate ExclusionReason = "missing_air_date"
	// ReasonUnparseableRecord marks files whose name carries no resolvable
	// S<season>E<episode> identity. Produced during collection, before the
	// filter ever sees a record.
	ReasonUnparseableRecord ExclusionReason = "unparseable_record"
	// ReasonNoSeasonContext marks records sorted before the first normal
	// episode; no season can be established for them.
	ReasonNoSeasonContext ExclusionReason = "no_season_context"
)

// Exclusion pairs a dropped record with the reason it was dropped.
type Exclusion struct {
	Record Record
	Reason ExclusionReason
}

// Filter classifies records as eligible or excluded. Rules apply in order:
// out-of-band specials first, then records without an air date (normal and
// special alike). threshold is the first out-of-band special episode number.
func Filter(records []Record, threshold int) (eligible []Record, excluded []Exclusion) {
	for _, record := range records {
		switch {
		case record.Kind() == KindSpecial && record.Episode >= threshold:
			excluded = append(excluded, Exclusion{Record: record, Reason: ReasonOutOfBandSpecial})
		case !record.HasAired:
			excluded = append(excluded, Exclusion{Record: record, Reason: ReasonMissingAirDate})
		default:
			eligible = append(eligible, record)
		}
	}
	return eligible, excluded
}
