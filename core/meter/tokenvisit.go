package meter

import (
	"spn-core/core/pnet"
)

// TokenVisit collects one row per (token, place) sojourn: the token's
// identity and type, when it arrived, which visit number this was for the
// token, which place, and how long it stayed. An optional place filter
// restricts which places are recorded.
type TokenVisit struct {
	pnet.BasePlugin

	Required uint64
	Filter   map[uint32]bool // nil means unfiltered (every place recorded)

	clock Clock

	TokenID     []uint64
	TokenType   []uint32
	StartTime   []float64
	VisitNumber []uint64
	Place       []uint32
	Duration    []float64
}

// NewTokenVisit creates a token-visit collector. A nil filter records
// every place; required is the target row count per column.
func NewTokenVisit(clock Clock, required uint64, filter map[uint32]bool) *TokenVisit {
	return &TokenVisit{Required: required, Filter: filter, clock: clock}
}

func (c *TokenVisit) NeedMoreObservations() bool {
	return uint64(len(c.TokenID)) < c.Required
}

func (c *TokenVisit) Observations() map[string]any {
	return map[string]any{
		"token_id":     c.TokenID,
		"token_type":   c.TokenType,
		"start_time":   c.StartTime,
		"visit_number": c.VisitNumber,
		"place":        c.Place,
		"duration":     c.Duration,
	}
}

func (c *TokenVisit) Reset() {
	c.TokenID = nil
	c.TokenType = nil
	c.StartTime = nil
	c.VisitNumber = nil
	c.Place = nil
	c.Duration = nil
}

func (c *TokenVisit) collect(tokenID uint64, tokenType uint32, startTime float64, visitNumber uint64, place uint32, duration float64) {
	if !c.NeedMoreObservations() {
		return
	}
	c.TokenID = append(c.TokenID, tokenID)
	c.TokenType = append(c.TokenType, tokenType)
	c.StartTime = append(c.StartTime, startTime)
	c.VisitNumber = append(c.VisitNumber, visitNumber)
	c.Place = append(c.Place, place)
	c.Duration = append(c.Duration, duration)
}

// ObserveToken attaches a per-token observer that tracks the token's
// current sojourn (arrival time and visit number) and emits a row on
// departure.
func (c *TokenVisit) ObserveToken(t *pnet.Token) pnet.TokenObserver {
	return &tokenVisitObserver{collector: c, tokenID: t.ID(), tokenType: uint32(t.Type().Ordinal)}
}

type tokenVisitObserver struct {
	collector   *TokenVisit
	tokenID     uint64
	tokenType   uint32
	visitNumber uint64
	arrivalTime float64
}

func (o *tokenVisitObserver) ReportConstruction() {}
func (o *tokenVisitObserver) ReportDestruction()  {}

func (o *tokenVisitObserver) ReportArrivalAt(p *pnet.Place) {
	o.arrivalTime = o.collector.clock.CurrentTime()
	o.visitNumber++
}

func (o *tokenVisitObserver) ReportDepartureFrom(p *pnet.Place) {
	if o.collector.Filter != nil && !o.collector.Filter[uint32(p.Ordinal)] {
		return
	}
	now := o.collector.clock.CurrentTime()
	o.collector.collect(o.tokenID, o.tokenType, o.arrivalTime, o.visitNumber, uint32(p.Ordinal), now-o.arrivalTime)
}
