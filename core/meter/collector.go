// Package meter turns the net's observer callbacks into typed,
// column-oriented observation arrays, and enforces each collector's
// observation quota.
package meter

import "spn-core/core/fire"

// Clock is the virtual-time source every collector reads from. Satisfied
// by *fire.FireControl.
type Clock interface {
	CurrentTime() float64
}

var _ Clock = (*fire.FireControl)(nil)

// Collector is the contract shared by every meter: a set of parallel
// typed columns fed by observer callbacks, capped at a target count.
type Collector interface {
	// NeedMoreObservations reports whether any column is still short of
	// the collector's required observation count.
	NeedMoreObservations() bool
	// Observations returns a zero-copy handout of the accumulated
	// columns, keyed by the literal field names from the spec.
	Observations() map[string]any
	// Reset clears every column.
	Reset()
}
