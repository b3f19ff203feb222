package pnet

import "fmt"

// Transition is enabled exactly when DisabledArcCount == 0. Immediate
// transitions carry a priority (>0) and a weight (>0) for the scheduler's
// weighted tie-break; timed transitions carry priority 0 and a sampler.
type Transition struct {
	Name    string
	Ordinal int

	Timed    bool
	Priority int
	Weight   float64
	Sampler  func() (float64, error)

	Arcs             []*Arc
	observers        []TransitionObserver
	disabledArcCount int

	net *Net
}

func newTransition(name string, ordinal int, net *Net) *Transition {
	return &Transition{Name: name, Ordinal: ordinal, net: net}
}

// Enabled reports whether the transition is currently eligible to fire.
func (t *Transition) Enabled() bool { return t.disabledArcCount == 0 }

// DisabledArcCount exposes the invariant-#1 counter, for tests.
func (t *Transition) DisabledArcCount() int { return t.disabledArcCount }

func (t *Transition) incrementDisabledArcCount() {
	t.disabledArcCount++
	if t.disabledArcCount == 1 {
		t.fireGotDisabled()
	}
}

func (t *Transition) decrementDisabledArcCount() {
	t.disabledArcCount--
	if t.disabledArcCount == 0 {
		t.fireGotEnabled()
	}
}

func (t *Transition) fireGotEnabled() {
	for _, o := range t.observers {
		o.GotEnabled()
	}
}

func (t *Transition) fireGotDisabled() {
	for _, o := range t.observers {
		o.GotDisabled()
	}
}

// Fire executes every arc's flow action, in arc-insertion order, as a
// single atomic step. Enable/disable notifications raised by the flows
// reach observers (and, through auto-fire, the scheduler) as they occur;
// the atomicity is that Fire completes before the scheduler selects
// again. The caller (the scheduler) must not invoke Fire again until this
// call returns.
func (t *Transition) Fire() error {
	if !t.Enabled() {
		return fmt.Errorf("transition %q is not enabled (disabledArcCount=%d)", t.Name, t.disabledArcCount)
	}
	for _, o := range t.observers {
		o.BeforeFiring()
	}
	for _, a := range t.Arcs {
		if err := a.flow(t.net); err != nil {
			return fmt.Errorf("firing transition %q: %w", t.Name, err)
		}
	}
	for _, o := range t.observers {
		o.AfterFiring()
	}
	return nil
}
