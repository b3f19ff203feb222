// Package logging is an observer plugin that threads zerolog through the
// net's structural events, grounded on the pack's chain/logging observer
// pattern generalized to the three-capability Plugin contract.
package logging

import (
	"github.com/rs/zerolog"

	"spn-core/core/fire"
	"spn-core/core/pnet"
)

// Plugin logs transition firings at Debug and place token movement at
// Trace, tagged with the current virtual time.
type Plugin struct {
	pnet.BasePlugin
	logger zerolog.Logger
	clock  *fire.FireControl
}

// New creates a logging plugin bound to a logger and the scheduler's
// clock (for timestamped log lines).
func New(logger zerolog.Logger, clock *fire.FireControl) *Plugin {
	return &Plugin{logger: logger, clock: clock}
}

func (p *Plugin) ObserveTransition(t *pnet.Transition) pnet.TransitionObserver {
	return &transitionLogger{plugin: p, name: t.Name}
}

func (p *Plugin) ObservePlace(pl *pnet.Place) pnet.PlaceObserver {
	return &placeLogger{plugin: p, name: pl.Name}
}

type transitionLogger struct {
	plugin *Plugin
	name   string
}

func (l *transitionLogger) BeforeFiring() {
	l.plugin.logger.Debug().Str("transition", l.name).Float64("time", l.plugin.clock.CurrentTime()).Msg("firing")
}
func (l *transitionLogger) AfterFiring() {
	l.plugin.logger.Debug().Str("transition", l.name).Float64("time", l.plugin.clock.CurrentTime()).Msg("fired")
}
func (l *transitionLogger) GotEnabled() {
	l.plugin.logger.Debug().Str("transition", l.name).Msg("enabled")
}
func (l *transitionLogger) GotDisabled() {
	l.plugin.logger.Debug().Str("transition", l.name).Msg("disabled")
}

type placeLogger struct {
	plugin *Plugin
	name   string
}

func (l *placeLogger) ReportArrivalOf(t *pnet.Token) {
	l.plugin.logger.Trace().Str("place", l.name).Uint64("token_id", t.ID()).Msg("token arrived")
}
func (l *placeLogger) ReportDepartureOf(t *pnet.Token) {
	l.plugin.logger.Trace().Str("place", l.name).Uint64("token_id", t.ID()).Msg("token departed")
}
