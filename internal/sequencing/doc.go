// Package sequencing computes chronological display positions for special
// episodes interleaved among regularly numbered ones.
//
// The package is pure: it performs no I/O and holds no state between calls.
// A run flows through three functions. Filter drops out-of-band specials and
// records without an air date. Sequence sorts the remaining set by
// (air date, original season, original episode) and assigns each record a
// (display season, display episode) pair in a single pass, where only normal
// records establish or change the current season. Converge compares a
// computed pair against the cached prior result and decides whether a rewrite
// is required, which makes repeated runs over an unchanged library a no-op.
package sequencing
