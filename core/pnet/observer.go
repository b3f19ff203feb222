package pnet

// PlaceObserver is notified of token arrivals and departures at a place.
// Observers must not mutate the emitting entity.
type PlaceObserver interface {
	ReportArrivalOf(t *Token)
	ReportDepartureOf(t *Token)
}

// TokenObserver is notified of a token's construction, destruction, and
// movement between places.
type TokenObserver interface {
	ReportConstruction()
	ReportDestruction()
	ReportArrivalAt(p *Place)
	ReportDepartureFrom(p *Place)
}

// TransitionObserver is notified around a transition's firing and on every
// enabled/disabled crossing of its disabled-arc-count.
type TransitionObserver interface {
	BeforeFiring()
	AfterFiring()
	GotEnabled()
	GotDisabled()
}

// Plugin is the extension point consumed by Net. Each factory may return
// nil to decline observing a given entity; Net only retains non-nil
// results. A plugin that only cares about one capability leaves the other
// two factories returning nil.
type Plugin interface {
	ObservePlace(p *Place) PlaceObserver
	ObserveToken(t *Token) TokenObserver
	ObserveTransition(tr *Transition) TransitionObserver
}

// BasePlugin is embeddable by plugins that only implement a subset of the
// three factories; its methods all return nil.
type BasePlugin struct{}

func (BasePlugin) ObservePlace(*Place) PlaceObserver            { return nil }
func (BasePlugin) ObserveToken(*Token) TokenObserver             { return nil }
func (BasePlugin) ObserveTransition(*Transition) TransitionObserver { return nil }
