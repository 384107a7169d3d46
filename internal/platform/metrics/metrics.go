// Package metrics owns the Prometheus registry the gateway exposes on /metrics.
package metrics

import (
	"net/http"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry wraps a dedicated Prometheus registry so tests can build as many
// gateways as they like without duplicate-registration panics.
type Registry struct {
	*prometheus.Registry
}

// NewRegistry creates a registry with Go runtime, process and build info collectors.
func NewRegistry(version, environment string) *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
		Name: "iban_gateway_build_info",
		Help: "Build information of the running gateway",
	}, []string{"version", "environment", "go_version"}).
		WithLabelValues(version, environment, runtime.Version()).Set(1)
	return &Registry{Registry: reg}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{Registry: r.Registry})
}
