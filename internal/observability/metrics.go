package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the history load pipeline.
type Metrics struct {
	LoadsTotal    *prometheus.CounterVec // label: outcome={success,error}
	StaleDropped  prometheus.Counter
	LoadsInFlight prometheus.Gauge
	FetchDuration prometheus.Histogram
}

// NewMetrics creates and registers all collectors with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.LoadsTotal,
		m.StaleDropped,
		m.LoadsInFlight,
		m.FetchDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		LoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_dashboard",
			Name:      "loads_total",
			Help:      "History loads by settled outcome.",
		}, []string{"outcome"}),
		StaleDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_dashboard",
			Name:      "stale_loads_dropped_total",
			Help:      "Loads that settled after being superseded and were not committed.",
		}),
		LoadsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_dashboard",
			Name:      "loads_in_flight",
			Help:      "Number of history loads currently awaiting the upstream response.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_dashboard",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the outbound archive API call.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
