package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsReporter records trial latencies as prometheus metrics
type MetricsReporter struct {
	trials  prometheus.Histogram
	rounds  prometheus.Counter
	average prometheus.Gauge
}

// NewMetricsReporter registers the benchmark collectors for engine on reg
func NewMetricsReporter(reg prometheus.Registerer, engine string) (*MetricsReporter, error) {
	labels := prometheus.Labels{"engine": engine}
	m := &MetricsReporter{
		trials: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "modexp",
			Name:        "trial_duration_seconds",
			Help:        "Latency of a single modular exponentiation.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-6, 2, 24),
		}),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "modexp",
			Name:        "trials_total",
			Help:        "Number of completed trials.",
			ConstLabels: labels,
		}),
		average: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "modexp",
			Name:        "mean_duration_seconds",
			Help:        "Mean trial latency of the last finished run.",
			ConstLabels: labels,
		}),
	}
	for _, c := range []prometheus.Collector{m.trials, m.rounds, m.average} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsReporter) Trial(_ int, elapsed time.Duration) {
	m.trials.Observe(elapsed.Seconds())
	m.rounds.Inc()
}

func (m *MetricsReporter) Summary(report *Report) {
	m.average.Set(report.Mean.Seconds())
}
