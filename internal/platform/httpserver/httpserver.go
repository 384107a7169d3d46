package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with the gateway's connection timeouts. The
// request timeout itself is enforced by middleware so it can answer in JSON.
func New(addr string, handler http.Handler, requestTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
