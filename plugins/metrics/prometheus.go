// Package metrics is an optional observer plugin that exposes firing
// counts, place populations, and inter-firing intervals as Prometheus
// series, grounded on the pack's lazily-registered-vector Prometheus
// provider pattern.
package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spn-core/core/fire"
	"spn-core/core/pnet"
)

// Plugin exports three Prometheus series, all driven by the same
// observer callbacks the collectors in package meter consume, so a scrape
// and a collector snapshot of the same run never disagree.
type Plugin struct {
	pnet.BasePlugin

	clock *fire.FireControl

	firings    *prom.CounterVec
	population *prom.GaugeVec
	interfire  prom.Histogram
}

// Options configures the Prometheus plugin.
type Options struct {
	Registry  *prom.Registry // optional; a fresh registry is created if nil
	Namespace string         // optional metric name prefix
}

// New creates the plugin and registers its series against the given (or a
// fresh) registry.
func New(clock *fire.FireControl, opts Options) *Plugin {
	reg := opts.Registry
	if reg == nil {
		reg = prom.NewRegistry()
	}
	p := &Plugin{
		clock: clock,
		firings: prom.NewCounterVec(prom.CounterOpts{
			Namespace: opts.Namespace,
			Name:      "transition_firings_total",
			Help:      "Total firings per transition.",
		}, []string{"transition"}),
		population: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: opts.Namespace,
			Name:      "place_tokens",
			Help:      "Current token count per place.",
		}, []string{"place"}),
		interfire: prom.NewHistogram(prom.HistogramOpts{
			Namespace: opts.Namespace,
			Name:      "transition_interfiring_seconds",
			Help:      "Virtual-time interval between successive firings of any transition.",
		}),
	}
	reg.MustRegister(p.firings, p.population, p.interfire)
	return p
}

// Handler exposes the standard /metrics scrape endpoint.
func (p *Plugin) Handler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (p *Plugin) ObserveTransition(t *pnet.Transition) pnet.TransitionObserver {
	return &transitionMetrics{plugin: p, name: t.Name, previousFiringTime: p.clock.CurrentTime()}
}

func (p *Plugin) ObservePlace(pl *pnet.Place) pnet.PlaceObserver {
	return &placeMetrics{plugin: p, name: pl.Name}
}

type transitionMetrics struct {
	plugin             *Plugin
	name               string
	previousFiringTime float64
}

func (m *transitionMetrics) BeforeFiring() {}
func (m *transitionMetrics) GotEnabled()   {}
func (m *transitionMetrics) GotDisabled()  {}

func (m *transitionMetrics) AfterFiring() {
	now := m.plugin.clock.CurrentTime()
	m.plugin.firings.WithLabelValues(m.name).Inc()
	m.plugin.interfire.Observe(now - m.previousFiringTime)
	m.previousFiringTime = now
}

type placeMetrics struct {
	plugin    *Plugin
	name      string
	numTokens float64
}

func (m *placeMetrics) ReportArrivalOf(*pnet.Token) {
	m.numTokens++
	m.plugin.population.WithLabelValues(m.name).Set(m.numTokens)
}

func (m *placeMetrics) ReportDepartureOf(*pnet.Token) {
	m.numTokens--
	m.plugin.population.WithLabelValues(m.name).Set(m.numTokens)
}
