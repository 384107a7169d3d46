package handler

// Handler tests verify HTTP status mapping, the response shape and request
// validation. Service behavior is covered in internal/iban/service.

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"iban-gateway/internal/iban/handler/mocks"
	"iban-gateway/internal/iban/models"
	dErrors "iban-gateway/pkg/domain-errors"
	"iban-gateway/pkg/iban"
	"iban-gateway/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/iban-mocks.go -package=mocks Service

type IBANHandlerSuite struct {
	suite.Suite
}

func TestIBANHandlerSuite(t *testing.T) {
	suite.Run(t, new(IBANHandlerSuite))
}

// =============================================================================
// Validate
// =============================================================================

func (s *IBANHandlerSuite) TestHandleValidate() {
	s.Run("valid IBAN returns extracted fields", func() {
		router, mockService := newTestRouter(s.T(), 0)
		input := testutil.SampleIBANs.Germany
		mockService.EXPECT().Validate(gomock.Any(), input).
			Return(models.NewResult(input, iban.MustValidate(input), nil))

		w := s.do(router, http.MethodPost, "/iban/validate", models.ValidateRequest{IBAN: input})

		s.Require().Equal(http.StatusOK, w.Code)
		var resp ValidationResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(ValidationResponse{
			Valid:         true,
			IBAN:          "DE89370400440532013000",
			Formatted:     "DE89 3704 0044 0532 0130 00",
			CountryCode:   "DE",
			CheckDigits:   "89",
			BBAN:          "370400440532013000",
			BankCode:      "37040044",
			AccountDigits: "0532013000",
			AccountNumber: "532013000",
		}, resp)
	})

	s.Run("alphanumeric account omits account_number", func() {
		router, mockService := newTestRouter(s.T(), 0)
		input := testutil.SampleIBANs.Malta
		mockService.EXPECT().Validate(gomock.Any(), input).
			Return(models.NewResult(input, iban.MustValidate(input), nil))

		w := s.do(router, http.MethodPost, "/iban/validate", models.ValidateRequest{IBAN: input})

		s.Require().Equal(http.StatusOK, w.Code)
		body := decodeMap(s.T(), w)
		s.NotContains(body, "account_number")
		s.Equal("0012345MTLCAST001S", body["account_digits"])
	})

	s.Run("invalid IBAN returns 200 with reason", func() {
		router, mockService := newTestRouter(s.T(), 0)
		mockService.EXPECT().Validate(gomock.Any(), "DE00").
			Return(models.NewResult("DE00", iban.IBAN{}, iban.ErrInvalidLength))

		w := s.do(router, http.MethodPost, "/iban/validate", models.ValidateRequest{IBAN: "DE00"})

		s.Require().Equal(http.StatusOK, w.Code)
		body := decodeMap(s.T(), w)
		s.Equal(false, body["valid"])
		s.Equal("invalid_length", body["reason"])
		s.Equal(iban.InvalidLength.Message(), body["message"])
		s.NotContains(body, "iban")
		s.NotContains(body, "bank_code")
	})

	s.Run("missing iban returns 400", func() {
		router, _ := newTestRouter(s.T(), 0)
		w := s.do(router, http.MethodPost, "/iban/validate", map[string]any{})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("whitespace-only iban returns 400", func() {
		router, _ := newTestRouter(s.T(), 0)
		w := s.do(router, http.MethodPost, "/iban/validate", models.ValidateRequest{IBAN: "   "})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("oversized input returns 400", func() {
		router, _ := newTestRouter(s.T(), 0)
		w := s.do(router, http.MethodPost, "/iban/validate", models.ValidateRequest{IBAN: strings.Repeat("A", 257)})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("body above the single-item limit returns 413", func() {
		router, _ := newTestRouter(s.T(), 0)
		body := `{"iban":"` + strings.Repeat(" ", 70<<10) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/iban/validate", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		s.assertStatusAndError(w, http.StatusRequestEntityTooLarge, "payload_too_large")
	})

	s.Run("malformed JSON returns 400", func() {
		router, _ := newTestRouter(s.T(), 0)
		req := httptest.NewRequest(http.MethodPost, "/iban/validate", strings.NewReader("{"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		s.assertStatusAndError(w, http.StatusBadRequest, "bad_request")
	})
}

// =============================================================================
// Batch
// =============================================================================

func (s *IBANHandlerSuite) TestHandleValidateBatch() {
	s.Run("results keep order and are counted", func() {
		router, mockService := newTestRouter(s.T(), 0)
		inputs := []string{testutil.SampleIBANs.Norway, "XX", testutil.SampleIBANs.Belgium}
		mockService.EXPECT().ValidateBatch(gomock.Any(), inputs).Return([]models.Result{
			models.NewResult(inputs[0], iban.MustValidate(inputs[0]), nil),
			models.NewResult(inputs[1], iban.IBAN{}, iban.ErrInvalidCountryCode),
			models.NewResult(inputs[2], iban.MustValidate(inputs[2]), nil),
		}, nil)

		w := s.do(router, http.MethodPost, "/iban/validate/batch", models.BatchRequest{IBANs: inputs})

		s.Require().Equal(http.StatusOK, w.Code)
		var resp BatchResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(2, resp.ValidCount)
		s.Equal(1, resp.InvalidCount)
		s.Require().Len(resp.Results, 3)
		s.Equal("NO", resp.Results[0].CountryCode)
		s.Equal("invalid_country_code", resp.Results[1].Reason)
		s.Equal("BE", resp.Results[2].CountryCode)
	})

	s.Run("empty batch returns 400", func() {
		router, _ := newTestRouter(s.T(), 0)
		w := s.do(router, http.MethodPost, "/iban/validate/batch", models.BatchRequest{IBANs: []string{}})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("batch above the configured limit returns 400", func() {
		router, _ := newTestRouter(s.T(), 2)
		w := s.do(router, http.MethodPost, "/iban/validate/batch", models.BatchRequest{IBANs: []string{"a", "b", "c"}})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("oversized item returns 400", func() {
		router, _ := newTestRouter(s.T(), 0)
		w := s.do(router, http.MethodPost, "/iban/validate/batch",
			models.BatchRequest{IBANs: []string{"DE", strings.Repeat("9", 300)}})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("service timeout returns 504", func() {
		router, mockService := newTestRouter(s.T(), 0)
		mockService.EXPECT().ValidateBatch(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.Wrap(context.DeadlineExceeded, dErrors.CodeTimeout, "batch validation did not complete"))

		w := s.do(router, http.MethodPost, "/iban/validate/batch", models.BatchRequest{IBANs: []string{"DE"}})
		s.assertStatusAndError(w, http.StatusGatewayTimeout, "timeout")
	})
}

// =============================================================================
// Check digits
// =============================================================================

func (s *IBANHandlerSuite) TestHandleCheckDigits() {
	s.Run("request is normalized before reaching the service", func() {
		router, mockService := newTestRouter(s.T(), 0)
		mockService.EXPECT().CheckDigits(gomock.Any(), "GB", "WEST12345698765432").
			Return(iban.MustValidate(testutil.SampleIBANs.UnitedKingdom), nil)

		w := s.do(router, http.MethodPost, "/iban/check-digits", models.CheckDigitsRequest{
			CountryCode: " gb ",
			BBAN:        "WEST 1234 5698 7654 32",
		})

		s.Require().Equal(http.StatusOK, w.Code)
		var resp CheckDigitsResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(CheckDigitsResponse{
			CheckDigits: "82",
			IBAN:        "GB82WEST12345698765432",
			Formatted:   "GB82 WEST 1234 5698 7654 32",
		}, resp)
	})

	s.Run("unsupported country returns 400", func() {
		router, _ := newTestRouter(s.T(), 0)
		w := s.do(router, http.MethodPost, "/iban/check-digits", models.CheckDigitsRequest{CountryCode: "US", BBAN: "123"})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("non alphanumeric bban returns 400", func() {
		router, _ := newTestRouter(s.T(), 0)
		w := s.do(router, http.MethodPost, "/iban/check-digits", models.CheckDigitsRequest{CountryCode: "DE", BBAN: "3704-0044"})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})

	s.Run("bban that does not fit the layout returns 400", func() {
		router, mockService := newTestRouter(s.T(), 0)
		mockService.EXPECT().CheckDigits(gomock.Any(), "DE", "1234").
			Return(iban.IBAN{}, dErrors.Wrap(iban.ErrInvalidLength, dErrors.CodeValidation, "bban does not fit the country format"))

		w := s.do(router, http.MethodPost, "/iban/check-digits", models.CheckDigitsRequest{CountryCode: "DE", BBAN: "1234"})
		s.assertStatusAndError(w, http.StatusBadRequest, "validation_error")
	})
}

// =============================================================================
// Countries
// =============================================================================

func (s *IBANHandlerSuite) TestHandleCountries() {
	s.Run("list renders every country", func() {
		router, mockService := newTestRouter(s.T(), 0)
		mockService.EXPECT().Countries(gomock.Any()).Return(iban.Countries())

		w := s.do(router, http.MethodGet, "/iban/countries", nil)

		s.Require().Equal(http.StatusOK, w.Code)
		var resp CountriesResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Len(resp.Countries, len(iban.Countries()))
	})

	s.Run("single country with national check", func() {
		router, mockService := newTestRouter(s.T(), 0)
		be, _ := iban.LookupCountry("BE")
		mockService.EXPECT().Country(gomock.Any(), "be").Return(be, nil)

		w := s.do(router, http.MethodGet, "/iban/countries/be", nil)

		s.Require().Equal(http.StatusOK, w.Code)
		var resp CountryResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("BE", resp.Code)
		s.Equal(16, resp.Length)
		s.True(resp.NationalCheck)
		s.Equal("belgian_mod97", resp.CheckAlgorithm)
		s.Equal(iban.Span{Start: 4, End: 7}, resp.BankCode)
	})

	s.Run("unknown country returns 404", func() {
		router, mockService := newTestRouter(s.T(), 0)
		mockService.EXPECT().Country(gomock.Any(), "US").
			Return(iban.Country{}, dErrors.New(dErrors.CodeNotFound, "country \"US\" does not issue IBANs"))

		w := s.do(router, http.MethodGet, "/iban/countries/US", nil)
		s.assertStatusAndError(w, http.StatusNotFound, "not_found")
	})

	s.Run("overlong code never reaches the service", func() {
		router, _ := newTestRouter(s.T(), 0)
		w := s.do(router, http.MethodGet, "/iban/countries/DEU", nil)
		s.assertStatusAndError(w, http.StatusNotFound, "not_found")
	})
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestRouter(t *testing.T, maxBatch int) (chi.Router, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	New(mockService, logger, maxBatch).Register(router)
	return router, mockService
}

func (s *IBANHandlerSuite) do(router http.Handler, method, endpoint string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(bodyBytes)
	}
	req := httptest.NewRequest(method, endpoint, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

// assertStatusAndError asserts both status code and error response in one call.
func (s *IBANHandlerSuite) assertStatusAndError(w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	s.Assert().Equal(expectedStatus, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Assert().Equal(expectedCode, resp["error"])
}
