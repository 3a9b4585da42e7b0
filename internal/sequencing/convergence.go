package sequencing

// Decision is the outcome of the convergence check for one special record.
type Decision int

const (
	// DecisionWrite means the record's display tags and cache entry must be
	// rewritten.
	DecisionWrite Decision = iota
	// DecisionSkip means the cached result already matches the computed one.
	DecisionSkip
)

func (d Decision) String() string {
	if d == DecisionSkip {
		return "skip"
	}
	return "write"
}

// Converge compares a freshly computed display pair against the cached prior
// result. Skip requires an existing cache entry whose season and episode both
// match; any other case (no cache, or a mismatch) yields Write. Repeated runs
// over an unchanged library therefore converge to zero writes.
func Converge(computed Display, cached *Display) Decision {
	if cached != nil && cached.Season == computed.Season && cached.Episode == computed.Episode {
		return DecisionSkip
	}
	return DecisionWrite
}
