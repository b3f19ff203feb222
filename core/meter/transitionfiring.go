package meter

import "spn-core/core/pnet"

// TransitionFiring collects one row per firing of a subscribed
// transition: the transition, the firing time, and the interval since
// that transition's previous firing (or since simulation start, for its
// first firing).
type TransitionFiring struct {
	pnet.BasePlugin

	Required uint64
	clock    Clock

	Transition []uint32
	FiringTime []float64
	Interval   []float64
}

// NewTransitionFiring creates a transition-firing collector.
func NewTransitionFiring(clock Clock, required uint64) *TransitionFiring {
	return &TransitionFiring{Required: required, clock: clock}
}

func (c *TransitionFiring) NeedMoreObservations() bool {
	return uint64(len(c.Transition)) < c.Required
}

func (c *TransitionFiring) Observations() map[string]any {
	return map[string]any{
		"transition":  c.Transition,
		"firing_time": c.FiringTime,
		"interval":    c.Interval,
	}
}

func (c *TransitionFiring) Reset() {
	c.Transition = nil
	c.FiringTime = nil
	c.Interval = nil
}

func (c *TransitionFiring) collect(transition uint32, firingTime, interval float64) {
	if !c.NeedMoreObservations() {
		return
	}
	c.Transition = append(c.Transition, transition)
	c.FiringTime = append(c.FiringTime, firingTime)
	c.Interval = append(c.Interval, interval)
}

func (c *TransitionFiring) ObserveTransition(tr *pnet.Transition) pnet.TransitionObserver {
	return &transitionFiringObserver{
		collector:          c,
		transition:         uint32(tr.Ordinal),
		previousFiringTime: c.clock.CurrentTime(),
	}
}

type transitionFiringObserver struct {
	collector          *TransitionFiring
	transition         uint32
	previousFiringTime float64
}

func (o *transitionFiringObserver) BeforeFiring() {}
func (o *transitionFiringObserver) GotEnabled()   {}
func (o *transitionFiringObserver) GotDisabled()  {}

func (o *transitionFiringObserver) AfterFiring() {
	now := o.collector.clock.CurrentTime()
	o.collector.collect(o.transition, now, now-o.previousFiringTime)
	o.previousFiringTime = now
}
