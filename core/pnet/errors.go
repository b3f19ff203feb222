package pnet

import "errors"

// Sentinel error kinds surfaced by the net core. Callers should use
// errors.Is against these: construction, lookup, token-type, and idle
// errors wrap one of them with place/arc/transition context via
// fmt.Errorf("...: %w", ...). Firing a disabled transition and popping an
// empty place return errors that wrap no sentinel.
var (
	// ErrInvalidStructure subsumes every place-status FSM violation: an
	// add* call that would leave a timed transition's sole-consumer
	// guarantee unsatisfied.
	ErrInvalidStructure = errors.New("invalid net structure")

	// ErrDuplicateName is returned when an add* call collides with an
	// existing name in its namespace (types, places, transitions, arcs).
	ErrDuplicateName = errors.New("duplicate name")

	// ErrUnknownName is returned when a lookup misses.
	ErrUnknownName = errors.New("unknown name")

	// ErrInvalidTokenType is returned when a token of the wrong type is
	// pushed onto a place.
	ErrInvalidTokenType = errors.New("invalid token type")

	// ErrNoEnabledTransition means the scheduler has nothing left to do.
	// The simulation driver treats this as a normal halt, not a fault.
	ErrNoEnabledTransition = errors.New("no enabled transition")

	// ErrBadSample is wrapped into the error built when a timed
	// transition's sampler fails or yields a non-finite or negative
	// duration. The scheduler logs that error and does not return it; the
	// transition is left unscheduled.
	ErrBadSample = errors.New("sampler returned an invalid duration")
)
