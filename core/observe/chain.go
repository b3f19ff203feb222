package observe

import "spn-core/core/pnet"

// Chain composes multiple plugins into one, dispatched in the order
// given. Grounded on the pack's ChainObserver pattern (one observer
// fanning out to several), generalized here to the three-capability
// Plugin contract instead of a single transition-observer shape.
type Chain struct {
	plugins []pnet.Plugin
}

// NewChain builds a composed plugin from its members.
func NewChain(plugins ...pnet.Plugin) *Chain {
	return &Chain{plugins: plugins}
}

func (c *Chain) ObservePlace(p *pnet.Place) pnet.PlaceObserver {
	var obs []pnet.PlaceObserver
	for _, pl := range c.plugins {
		if o := pl.ObservePlace(p); o != nil {
			obs = append(obs, o)
		}
	}
	if len(obs) == 0 {
		return nil
	}
	return placeChain(obs)
}

func (c *Chain) ObserveToken(t *pnet.Token) pnet.TokenObserver {
	var obs []pnet.TokenObserver
	for _, pl := range c.plugins {
		if o := pl.ObserveToken(t); o != nil {
			obs = append(obs, o)
		}
	}
	if len(obs) == 0 {
		return nil
	}
	return tokenChain(obs)
}

func (c *Chain) ObserveTransition(tr *pnet.Transition) pnet.TransitionObserver {
	var obs []pnet.TransitionObserver
	for _, pl := range c.plugins {
		if o := pl.ObserveTransition(tr); o != nil {
			obs = append(obs, o)
		}
	}
	if len(obs) == 0 {
		return nil
	}
	return transitionChain(obs)
}

type placeChain []pnet.PlaceObserver

func (c placeChain) ReportArrivalOf(t *pnet.Token) {
	for _, o := range c {
		o.ReportArrivalOf(t)
	}
}
func (c placeChain) ReportDepartureOf(t *pnet.Token) {
	for _, o := range c {
		o.ReportDepartureOf(t)
	}
}

type tokenChain []pnet.TokenObserver

func (c tokenChain) ReportConstruction() {
	for _, o := range c {
		o.ReportConstruction()
	}
}
func (c tokenChain) ReportDestruction() {
	for _, o := range c {
		o.ReportDestruction()
	}
}
func (c tokenChain) ReportArrivalAt(p *pnet.Place) {
	for _, o := range c {
		o.ReportArrivalAt(p)
	}
}
func (c tokenChain) ReportDepartureFrom(p *pnet.Place) {
	for _, o := range c {
		o.ReportDepartureFrom(p)
	}
}

type transitionChain []pnet.TransitionObserver

func (c transitionChain) BeforeFiring() {
	for _, o := range c {
		o.BeforeFiring()
	}
}
func (c transitionChain) AfterFiring() {
	for _, o := range c {
		o.AfterFiring()
	}
}
func (c transitionChain) GotEnabled() {
	for _, o := range c {
		o.GotEnabled()
	}
}
func (c transitionChain) GotDisabled() {
	for _, o := range c {
		o.GotDisabled()
	}
}
