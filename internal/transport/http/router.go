// Package httptransport assembles the gateway's HTTP surface: the middleware
// chain, health probes, the metrics endpoint and the IBAN routes.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	ibanHandler "iban-gateway/internal/iban/handler"
	"iban-gateway/internal/platform/health"
	"iban-gateway/internal/platform/metrics"
	dErrors "iban-gateway/pkg/domain-errors"
	"iban-gateway/pkg/platform/httputil"
	"iban-gateway/pkg/platform/middleware/request"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger         *slog.Logger
	Registry       *metrics.Registry
	Health         *health.Handler
	IBAN           *ibanHandler.Handler
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(deps.Logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(deps.Logger))
	if deps.Registry != nil {
		r.Use(request.LatencyMiddleware(request.NewMetrics(deps.Registry)))
	}
	if deps.RequestTimeout > 0 {
		r.Use(request.Timeout(deps.RequestTimeout))
	}
	r.Use(request.ContentTypeJSON)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{
			Error:            "method_not_allowed",
			ErrorDescription: "method not allowed on this route",
		})
	})

	if deps.Health != nil {
		deps.Health.Register(r)
	}
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", deps.Registry.Handler())
	}
	if deps.IBAN != nil {
		deps.IBAN.Register(r)
	}

	return r
}
