package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "iban-gateway/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDesc   string
	}{
		{"not found", dErrors.New(dErrors.CodeNotFound, "country XX is not supported"), http.StatusNotFound, "not_found", "country XX is not supported"},
		{"validation", dErrors.New(dErrors.CodeValidation, "iban is required"), http.StatusBadRequest, "validation_error", "iban is required"},
		{"bad request", dErrors.New(dErrors.CodeBadRequest, ""), http.StatusBadRequest, "bad_request", ""},
		{"payload too large", dErrors.New(dErrors.CodePayloadTooLarge, "too big"), http.StatusRequestEntityTooLarge, "payload_too_large", "too big"},
		{"wrapped domain error", fmt.Errorf("handler: %w", dErrors.New(dErrors.CodeTimeout, "slow")), http.StatusGatewayTimeout, "timeout", "slow"},
		{"bare deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout", ""},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.Equal(t, tt.wantDesc, resp.ErrorDescription)
		})
	}
}
