// Package fire implements the discrete-event scheduler: priority-ordered
// immediate transitions with weighted random tie-breaking, timed
// transitions on a deadline heap, and the virtual-time advancement rule.
package fire

import "math/rand/v2"

// Rand is the pluggable random number source consumed by weighted choice.
// A single instance should feed both this and any distribution samplers
// the caller wires into timed transitions, so that a seed fully determines
// a run.
type Rand interface {
	Float64() float64
}

// NewRand wraps math/rand/v2 with the given seed, avoiding the package-level
// global generator so that multiple simulations in one process never share
// RNG state.
func NewRand(seed1, seed2 uint64) Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}
