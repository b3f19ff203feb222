// Package sim drives the fire-control loop until every subscribed
// collector reports it has enough observations, or the scheduler runs out
// of enabled work.
package sim

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"spn-core/core/fire"
	"spn-core/core/meter"
	"spn-core/core/pnet"
)

// Driver runs a built net to completion. Halting is deterministic: once
// every subscribed collector is satisfied, no further events are
// generated even though the net might still produce them.
type Driver struct {
	net        *pnet.Net
	fc         *fire.FireControl
	collectors []meter.Collector
	logger     zerolog.Logger
}

// NewDriver builds a driver over an already-constructed (but not yet
// started) net and its scheduler, subscribed to the given collectors. A
// driver with no collectors runs until the scheduler is idle or its
// context is cancelled.
func NewDriver(net *pnet.Net, fc *fire.FireControl, logger *zerolog.Logger, collectors ...meter.Collector) *Driver {
	l := log.Logger
	if logger != nil {
		l = *logger
	}
	return &Driver{net: net, fc: fc, collectors: collectors, logger: l}
}

// Run starts the net and scheduler, then fires transitions until halted.
// ctx is checked once per loop iteration, never mid-firing: there are no
// suspension points inside FireNext, so cancellation only ever lands
// between events.
func (d *Driver) Run(ctx context.Context) error {
	d.net.Start()
	d.fc.Start()

	for d.needMoreObservations() {
		select {
		case <-ctx.Done():
			d.logger.Info().Err(ctx.Err()).Msg("simulation halted: context cancelled")
			return ctx.Err()
		default:
		}

		if err := d.fc.FireNext(); err != nil {
			if errors.Is(err, pnet.ErrNoEnabledTransition) {
				d.logger.Info().Float64("time", d.fc.CurrentTime()).Msg("simulation halted: no enabled transition")
				return nil
			}
			return err
		}
	}
	d.logger.Info().Float64("time", d.fc.CurrentTime()).Msg("simulation halted: all subscribed collectors satisfied")
	return nil
}

func (d *Driver) needMoreObservations() bool {
	if len(d.collectors) == 0 {
		return true
	}
	for _, c := range d.collectors {
		if c.NeedMoreObservations() {
			return true
		}
	}
	return false
}
