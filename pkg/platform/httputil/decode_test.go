package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "iban-gateway/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupRequest struct {
	IBAN string `json:"iban"`
}

type checkedRequest struct {
	IBAN string `json:"iban"`
}

func (r *checkedRequest) Validate() error {
	if r.IBAN == "" {
		return errors.New("iban is required")
	}
	return nil
}

// preparedRequest implements all preparation interfaces
type preparedRequest struct {
	IBAN      string `json:"iban"`
	sanitized bool
	validated bool
}

func (r *preparedRequest) Sanitize()  { r.sanitized = true }
func (r *preparedRequest) Normalize() { r.IBAN = strings.TrimSpace(r.IBAN) }
func (r *preparedRequest) Validate() error {
	r.validated = true
	if r.IBAN == "" {
		return errors.New("iban is required")
	}
	return nil
}

type codedRequest struct {
	Code string `json:"code"`
}

func (r *codedRequest) Validate() error {
	if r.Code == "" {
		return dErrors.New(dErrors.CodeBadRequest, "code is required")
	}
	return nil
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDecodeJSON(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("successful decode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"iban":"DE89370400440532013000"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[lookupRequest](w, req, logger, ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "DE89370400440532013000", result.IBAN)
	})

	t.Run("invalid JSON returns bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{invalid json}`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[lookupRequest](w, req, logger, ctx, "req-1")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w).Error)
	})

	t.Run("empty body returns bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(""))
		w := httptest.NewRecorder()

		_, ok := DecodeJSON[lookupRequest](w, req, logger, ctx, "req-1")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized body returns payload too large", func(t *testing.T) {
		body := `{"iban":"` + strings.Repeat("1", 100) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		req.Body = http.MaxBytesReader(w, req.Body, 16)

		_, ok := DecodeJSON[lookupRequest](w, req, logger, ctx, "req-1")

		assert.False(t, ok)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, "payload_too_large", decodeError(t, w).Error)
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("successful decode and validate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"iban":"x"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[checkedRequest](w, req, logger, ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
	})

	t.Run("plain validation error maps to validation_error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"iban":""}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[checkedRequest](w, req, logger, ctx, "req-1")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "validation_error", resp.Error)
		assert.Equal(t, "iban is required", resp.ErrorDescription)
	})

	t.Run("preserves domain error code from Validate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"code":""}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[codedRequest](w, req, logger, ctx, "req-1")

		assert.False(t, ok)
		assert.Equal(t, "bad_request", decodeError(t, w).Error)
	})

	t.Run("calls all preparation methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"iban":"  GB82 WEST  "}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[preparedRequest](w, req, logger, ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.True(t, result.sanitized)
		assert.True(t, result.validated)
		assert.Equal(t, "GB82 WEST", result.IBAN)
	})
}

func TestPrepareRequest(t *testing.T) {
	assert.NoError(t, PrepareRequest(&checkedRequest{IBAN: "x"}))
	assert.EqualError(t, PrepareRequest(&checkedRequest{}), "iban is required")
	assert.NoError(t, PrepareRequest(&lookupRequest{}), "types without hooks pass through")
}
