package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
}

// NewMetrics registers the HTTP latency histogram with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iban_endpoint_latency_seconds",
			Help:    "Latency of gateway endpoints in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"endpoint", "status"}),
	}
}

func (m *Metrics) ObserveEndpointLatency(endpoint, status string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint, status).Observe(durationSeconds)
}
