package meter

import "spn-core/core/pnet"

// PlacePopulation collects one row when a place's token count is about to
// change, recording how long the place held its *previous* count before
// the change. A change at the same virtual time as the place's previous
// change (a zero duration) produces no row.
type PlacePopulation struct {
	pnet.BasePlugin

	Required uint64
	clock    Clock

	StartTime []float64
	Place     []uint32
	Count     []uint64
	Duration  []float64
}

// NewPlacePopulation creates a place-population collector.
func NewPlacePopulation(clock Clock, required uint64) *PlacePopulation {
	return &PlacePopulation{Required: required, clock: clock}
}

func (c *PlacePopulation) NeedMoreObservations() bool {
	return uint64(len(c.StartTime)) < c.Required
}

func (c *PlacePopulation) Observations() map[string]any {
	return map[string]any{
		"start_time": c.StartTime,
		"place":      c.Place,
		"count":      c.Count,
		"duration":   c.Duration,
	}
}

func (c *PlacePopulation) Reset() {
	c.StartTime = nil
	c.Place = nil
	c.Count = nil
	c.Duration = nil
}

func (c *PlacePopulation) collect(startTime float64, place uint32, count uint64, duration float64) {
	if !c.NeedMoreObservations() {
		return
	}
	c.StartTime = append(c.StartTime, startTime)
	c.Place = append(c.Place, place)
	c.Count = append(c.Count, count)
	c.Duration = append(c.Duration, duration)
}

func (c *PlacePopulation) ObservePlace(p *pnet.Place) pnet.PlaceObserver {
	return &placePopulationObserver{collector: c, place: uint32(p.Ordinal)}
}

type placePopulationObserver struct {
	collector      *PlacePopulation
	place          uint32
	numTokens      uint64
	timeOfLastMove float64
}

func (o *placePopulationObserver) move(delta int64) {
	now := o.collector.clock.CurrentTime()
	duration := now - o.timeOfLastMove
	if duration > 0 {
		o.collector.collect(o.timeOfLastMove, o.place, o.numTokens, duration)
	}
	if delta < 0 {
		o.numTokens -= uint64(-delta)
	} else {
		o.numTokens += uint64(delta)
	}
	o.timeOfLastMove = now
}

func (o *placePopulationObserver) ReportArrivalOf(*pnet.Token)   { o.move(1) }
func (o *placePopulationObserver) ReportDepartureOf(*pnet.Token) { o.move(-1) }
