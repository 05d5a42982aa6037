package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ClassifierMetrics holds Prometheus metrics for the analyzer endpoints.
type ClassifierMetrics struct {
	Classifications  *prometheus.CounterVec
	Rejections       *prometheus.CounterVec
	InputLength      prometheus.Histogram
	ClassifyDuration prometheus.Histogram
	LexiconEntries   prometheus.Gauge
}

// NewClassifierMetrics creates and registers classifier metrics on the given registry.
func NewClassifierMetrics(reg prometheus.Registerer) *ClassifierMetrics {
	m := &ClassifierMetrics{
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Total number of classified texts, by label.",
		}, []string{"label"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_requests_total",
			Help:      "Total number of rejected analyzer requests, by reason.",
		}, []string{"reason"}),
		InputLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "input_length_characters",
			Help:      "Length of classified texts in characters.",
			Buckets:   []float64{10, 25, 50, 100, 200, 300, 400, 500},
		}),
		ClassifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classify_duration_seconds",
			Help:      "Duration of a single classification in seconds.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		LexiconEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lexicon_entries",
			Help:      "Number of entries in the loaded lexicon.",
		}),
	}

	reg.MustRegister(m.Classifications, m.Rejections, m.InputLength, m.ClassifyDuration, m.LexiconEntries)
	return m
}
