package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the chart
// pipeline. The core has no network surface of its own, so these are handed
// to whatever embeds the pipeline for scraping or dumping.
type Metrics struct {
	RowsRead          *prometheus.CounterVec // label: source={observed,reconstructed}
	CoercionWarnings  *prometheus.CounterVec // label: source
	ChartsBuilt       prometheus.Counter
	ChartBuildErrors  prometheus.Counter
	ChartBuildSeconds prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsRead,
		m.CoercionWarnings,
		m.ChartsBuilt,
		m.ChartBuildErrors,
		m.ChartBuildSeconds,
	)
	return m
}

// NewMetricsForTesting creates Metrics with no registration to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_timeline",
			Name:      "rows_read_total",
			Help:      "Total data rows read per source, missing-value rows included.",
		}, []string{"source"}),
		CoercionWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_timeline",
			Name:      "coercion_warnings_total",
			Help:      "Cells that failed numeric coercion and became the missing sentinel.",
		}, []string{"source"}),
		ChartsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_timeline",
			Name:      "charts_built_total",
			Help:      "Chart parameter bundles assembled successfully.",
		}),
		ChartBuildErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_timeline",
			Name:      "chart_build_errors_total",
			Help:      "Chart builds rejected for configuration errors.",
		}),
		ChartBuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_timeline",
			Name:      "chart_build_duration_seconds",
			Help:      "Duration of one filter-derive-assemble pass.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}
