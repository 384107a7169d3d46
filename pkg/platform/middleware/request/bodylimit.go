package request

import (
	"net/http"

	dErrors "iban-gateway/pkg/domain-errors"
	"iban-gateway/pkg/platform/httputil"
)

// BodyLimit returns middleware that limits the size of request bodies.
// A declared Content-Length above the limit is rejected with 413 before the
// handler runs; otherwise the body is wrapped in http.MaxBytesReader so that
// chunked uploads fail on read.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				httputil.WriteError(w, dErrors.New(dErrors.CodePayloadTooLarge, "request body too large"))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
