package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for IBAN validation.
type Metrics struct {
	Validations       *prometheus.CounterVec
	ValidationFailure *prometheus.CounterVec
	BatchSize         prometheus.Histogram
	BatchLatency      prometheus.Histogram
}

// New registers and returns IBAN validation collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iban_validations_total",
			Help: "Total number of IBAN validations, labeled by country and result",
		}, []string{"country", "result"}),
		ValidationFailure: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iban_validation_failures_total",
			Help: "Total number of failed IBAN validations, labeled by the first rule that failed",
		}, []string{"reason"}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "iban_batch_size",
			Help:    "Number of IBANs per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		BatchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "iban_batch_latency_seconds",
			Help:    "Latency of batch validations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementValidation(country, result string) {
	m.Validations.WithLabelValues(country, result).Inc()
}

func (m *Metrics) IncrementFailure(reason string) {
	m.ValidationFailure.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveBatch(size int, durationSeconds float64) {
	m.BatchSize.Observe(float64(size))
	m.BatchLatency.Observe(durationSeconds)
}
