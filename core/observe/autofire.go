// Package observe hosts the plugins that bridge the net's structural
// enable/disable events into other subsystems: the auto-fire plugin that
// drives fire control, and composition helpers for chaining plugins.
package observe

import (
	"spn-core/core/fire"
	"spn-core/core/pnet"
)

// AutoFire is the sole bridge turning a transition's structural
// enablement into scheduler state: on GotEnabled it calls
// FireControl.Enable, on GotDisabled it calls FireControl.Disable. Every
// net registers exactly one of these, on every transition, before Start.
type AutoFire struct {
	pnet.BasePlugin
	fc *fire.FireControl
}

// NewAutoFire creates the auto-fire plugin bound to a scheduler.
func NewAutoFire(fc *fire.FireControl) *AutoFire {
	return &AutoFire{fc: fc}
}

func (a *AutoFire) ObserveTransition(t *pnet.Transition) pnet.TransitionObserver {
	return &autoFireObserver{fc: a.fc, t: t}
}

type autoFireObserver struct {
	fc *fire.FireControl
	t  *pnet.Transition
}

func (o *autoFireObserver) BeforeFiring() {}
func (o *autoFireObserver) AfterFiring()  {}
func (o *autoFireObserver) GotEnabled()   { o.fc.Enable(o.t) }
func (o *autoFireObserver) GotDisabled()  { o.fc.Disable(o.t) }
