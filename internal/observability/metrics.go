package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the service.
type Metrics struct {
	SimulationsTotal   *prometheus.CounterVec // labels: outcome={ok,invalid_input,catalog_failed,error}
	CatalogLookups     *prometheus.CounterVec // labels: outcome={hit,miss,error}
	SimulationDuration prometheus.Histogram
	NarrativesTotal    *prometheus.CounterVec // labels: outcome={ok,missing_field}
	ReportsGenerated   prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		SimulationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impactcast",
			Name:      "simulations_total",
			Help:      "Simulation requests by outcome.",
		}, []string{"outcome"}),
		CatalogLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impactcast",
			Name:      "catalog_lookups_total",
			Help:      "NEO catalog lookups by outcome.",
		}, []string{"outcome"}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "impactcast",
			Name:      "simulation_duration_seconds",
			Help:      "Duration of one simulation request, including catalog lookup.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		NarrativesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impactcast",
			Name:      "narratives_total",
			Help:      "Narrative requests by outcome.",
		}, []string{"outcome"}),
		ReportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "impactcast",
			Name:      "reports_generated_total",
			Help:      "HTML reports generated and stored.",
		}),
	}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.SimulationsTotal,
		m.CatalogLookups,
		m.SimulationDuration,
		m.NarrativesTotal,
		m.ReportsGenerated,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests
// can construct servers repeatedly without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
