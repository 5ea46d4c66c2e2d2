package prime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every metric exported by the prime package. It is separate
// from the default registerer so that a CLI run can dump exactly these series
// with WriteMetrics.
var Registry = prometheus.NewRegistry()

var (
	metricsFactory = promauto.With(Registry)

	calculationsTotal = metricsFactory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "primecalc_calculations_total",
			Help: "The total number of n-th prime calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = metricsFactory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "primecalc_calculation_duration_seconds",
			Help:    "The duration of n-th prime calculations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"algorithm"},
	)
	sieveAttempts = metricsFactory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "primecalc_sieve_attempts",
			Help:    "Number of sieve passes needed before the bound covered the n-th prime",
			Buckets: []float64{1, 2, 3, 4, 6, 8},
		},
	)
	progressGauge = metricsFactory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "primecalc_calculation_progress",
			Help: "Current progress of n-th prime calculations (0.0 to 1.0)",
		},
		[]string{"calculator_index"},
	)
)

// WriteMetrics writes the package registry to filename in the text
// exposition format understood by the node_exporter textfile collector.
func WriteMetrics(filename string) error {
	return prometheus.WriteToTextfile(filename, Registry)
}
