package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"iban-gateway/internal/iban/models"
	dErrors "iban-gateway/pkg/domain-errors"
	"iban-gateway/pkg/iban"
	"iban-gateway/pkg/platform/httputil"
	"iban-gateway/pkg/platform/middleware/request"
	"iban-gateway/pkg/platform/validation"
	"iban-gateway/pkg/requestcontext"
)

// Service defines the interface for IBAN operations.
type Service interface {
	Validate(ctx context.Context, input string) models.Result
	ValidateBatch(ctx context.Context, inputs []string) ([]models.Result, error)
	Countries(ctx context.Context) []iban.Country
	Country(ctx context.Context, code string) (iban.Country, error)
	CheckDigits(ctx context.Context, countryCode, bban string) (iban.IBAN, error)
}

// Handler handles IBAN endpoints.
type Handler struct {
	logger   *slog.Logger
	service  Service
	maxBatch int
}

// New creates a new IBAN Handler. maxBatch bounds the number of items in a
// batch request; values below one fall back to the package default.
func New(service Service, logger *slog.Logger, maxBatch int) *Handler {
	if maxBatch < 1 {
		maxBatch = validation.DefaultMaxBatchItems
	}
	return &Handler{
		logger:   logger,
		service:  service,
		maxBatch: maxBatch,
	}
}

// Register registers the IBAN routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	small := r.With(request.BodyLimit(validation.MaxBodySize))
	small.Post("/iban/validate", h.handleValidate)
	small.Post("/iban/check-digits", h.handleCheckDigits)
	r.With(request.BodyLimit(validation.MaxBatchBodySize)).Post("/iban/validate/batch", h.handleValidateBatch)
	r.Get("/iban/countries", h.handleListCountries)
	r.Get("/iban/countries/{code}", h.handleGetCountry)
}

// handleValidate answers 200 for every well-formed request; an invalid IBAN
// is reported in the body, not the status.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Validate(ctx, req.IBAN)
	httputil.WriteJSON(w, http.StatusOK, toValidationResponse(result))
}

func (h *Handler) handleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.BatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := validation.CheckSliceCount("ibans", len(req.IBANs), h.maxBatch); err != nil {
		h.logger.WarnContext(ctx, "batch too large",
			"request_id", requestID,
			"size", len(req.IBANs),
			"max", h.maxBatch,
		)
		httputil.WriteError(w, err)
		return
	}

	results, err := h.service.ValidateBatch(ctx, req.IBANs)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch validation failed",
			"request_id", requestID,
			"size", len(req.IBANs),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBatchResponse(results))
}

func (h *Handler) handleCheckDigits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CheckDigitsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	id, err := h.service.CheckDigits(ctx, req.CountryCode, req.BBAN)
	if err != nil {
		h.logger.WarnContext(ctx, "check digit computation rejected",
			"request_id", requestID,
			"country", req.CountryCode,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &CheckDigitsResponse{
		CheckDigits: id.CheckDigits(),
		IBAN:        id.String(),
		Formatted:   id.Formatted(),
	})
}

func (h *Handler) handleListCountries(w http.ResponseWriter, r *http.Request) {
	countries := h.service.Countries(r.Context())
	httputil.WriteJSON(w, http.StatusOK, toCountriesResponse(countries))
}

func (h *Handler) handleGetCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	code := chi.URLParam(r, "code")
	if err := validation.CheckStringLength("code", code, validation.MaxCountryCodeLength); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "country not found"))
		return
	}

	country, err := h.service.Country(ctx, code)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to look up country",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCountryResponse(country))
}
