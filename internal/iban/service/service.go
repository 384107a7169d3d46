package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"iban-gateway/internal/iban/metrics"
	"iban-gateway/internal/iban/models"
	"iban-gateway/internal/platform/tracer"
	dErrors "iban-gateway/pkg/domain-errors"
	"iban-gateway/pkg/iban"
	strutil "iban-gateway/pkg/string"
)

type Option func(*Service)

const defaultConcurrency = 8

// readinessSample must always validate; the readiness probe fails otherwise.
const readinessSample = "GB82WEST12345698765432"

// Service validates IBANs on behalf of the HTTP layer. It records metrics and
// spans around the pure pkg/iban validator and fans batches out to a bounded
// worker pool.
type Service struct {
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      tracer.Tracer
	concurrency int
}

func NewService(logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		logger:      logger,
		tracer:      tracer.NewNoop(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.DiscardHandler)
	}
	return svc
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for validation spans.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithConcurrency caps the number of goroutines a batch uses.
// Zero or negative values keep the default of 8.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// Validate validates a single input. An invalid IBAN is a normal result, not an error.
func (s *Service) Validate(ctx context.Context, input string) models.Result {
	hash := tracer.HashIBAN(iban.Normalize(input))
	ctx, span := s.tracer.Start(ctx, tracer.SpanValidate, tracer.String(tracer.AttrIBANHash, hash))
	result := s.validate(input)
	span.SetAttributes(
		tracer.String(tracer.AttrCountry, result.CountryLabel()),
		tracer.Bool(tracer.AttrValid, result.Valid),
	)
	if !result.Valid {
		span.SetAttributes(tracer.String(tracer.AttrReason, result.Reason.String()))
	}
	span.End(nil)

	s.logger.DebugContext(ctx, "iban validated",
		"iban_hash", hash,
		"country", result.CountryLabel(),
		"valid", result.Valid,
		"reason", reasonAttr(result),
		"trace_id", span.TraceID(),
	)
	return result
}

// ValidateBatch validates inputs concurrently and returns results in input
// order. It fails only when ctx ends before every input was validated.
func (s *Service) ValidateBatch(ctx context.Context, inputs []string) (_ []models.Result, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanValidateBatch,
		tracer.Int(tracer.AttrBatchSize, len(inputs)),
		tracer.Int(tracer.AttrConcurrency, s.concurrency),
	)
	defer func() { span.End(err) }()

	results := make([]models.Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.validate(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.batchAborted(ctx, span, len(inputs), err)
	}
	// A cancellation that arrives after the last Go call leaves the group clean.
	if err := ctx.Err(); err != nil {
		return nil, s.batchAborted(ctx, span, len(inputs), err)
	}

	summary := models.Summarize(results)
	span.SetAttributes(tracer.Int(tracer.AttrBatchValid, summary.Valid))
	if s.metrics != nil {
		s.metrics.ObserveBatch(len(inputs), time.Since(start).Seconds())
	}
	s.logger.InfoContext(ctx, "iban batch validated",
		"size", len(inputs),
		"valid", summary.Valid,
		"invalid", summary.Invalid,
		"duration_ms", time.Since(start).Milliseconds(),
		"trace_id", span.TraceID(),
	)
	return results, nil
}

func (s *Service) batchAborted(ctx context.Context, span tracer.Span, size int, err error) error {
	span.AddEvent(tracer.EventBatchCancelled)
	s.logger.WarnContext(ctx, "iban batch aborted",
		"size", size,
		"error", err,
	)
	code := dErrors.CodeInternal
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		code = dErrors.CodeTimeout
	}
	return dErrors.Wrap(err, code, "batch validation did not complete")
}

// Countries returns every supported country sorted by code.
func (s *Service) Countries(_ context.Context) []iban.Country {
	return iban.Countries()
}

// Country looks a country up by code, ignoring ASCII case.
func (s *Service) Country(ctx context.Context, code string) (iban.Country, error) {
	_, span := s.tracer.Start(ctx, tracer.SpanCountryLookup, tracer.String(tracer.AttrCountry, code))
	country, ok := iban.LookupCountry(strutil.ToUpperASCII(code))
	if !ok {
		err := dErrors.Newf(dErrors.CodeNotFound, "country %q does not issue IBANs", code)
		span.End(err)
		return iban.Country{}, err
	}
	span.End(nil)
	return country, nil
}

// CheckDigits computes check digits for a BBAN and returns the completed IBAN.
// The BBAN must fit the country's layout.
func (s *Service) CheckDigits(_ context.Context, countryCode, bban string) (iban.IBAN, error) {
	digits, err := iban.CheckDigits(countryCode, bban)
	if err != nil {
		return iban.IBAN{}, dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
	}
	id, err := iban.Validate(strutil.ToUpperASCII(countryCode) + digits + bban)
	if err != nil {
		return iban.IBAN{}, dErrors.Wrap(err, dErrors.CodeValidation, "bban does not fit the country format: "+err.Error())
	}
	return id, nil
}

// Ready validates a fixed sample end to end. It backs the readiness probe.
func (s *Service) Ready(_ context.Context) error {
	if _, err := iban.Validate(readinessSample); err != nil {
		return err
	}
	if len(iban.Countries()) == 0 {
		return errors.New("country registry is empty")
	}
	return nil
}

func (s *Service) validate(input string) models.Result {
	id, err := iban.Validate(input)
	result := models.NewResult(input, id, err)
	if s.metrics != nil {
		s.metrics.IncrementValidation(result.CountryLabel(), result.ResultLabel())
		if !result.Valid {
			s.metrics.IncrementFailure(result.Reason.String())
		}
	}
	return result
}

func reasonAttr(r models.Result) string {
	if r.Valid {
		return ""
	}
	return r.Reason.String()
}
