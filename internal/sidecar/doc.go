// Package sidecar persists the per-record convergence cache: one JSON file
// beside each sequenced special's NFO, holding the original identity, the
// cached air date, and the last written display pair.
//
// The cache exists only to detect convergence. Deleting a side-car is always
// safe; the next run recomputes and rewrites it.
package sidecar
