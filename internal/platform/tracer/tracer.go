// Package tracer provides a small tracing abstraction for the gateway.
//
// Services depend on the Tracer interface rather than on OpenTelemetry
// directly. NoopTracer serves tests and disabled tracing; OTelTracer adapts
// an OpenTelemetry tracer for production.
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, marking it failed when err is non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)

	// TraceID returns the hex trace ID, or "" when the span is not recording.
	TraceID() string
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span. The returned context carries it to child operations.
	//
	//   ctx, span := tr.Start(ctx, tracer.SpanValidate,
	//       tracer.String(tracer.AttrIBANHash, tracer.HashIBAN(raw)),
	//   )
	//   defer span.End(nil)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashIBAN returns a short SHA-256 prefix of an IBAN so traces and logs can
// be correlated without carrying account numbers.
func HashIBAN(raw string) string {
	if raw == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(hash[:8])
}

// Span names.
const (
	SpanValidate      = "iban.validate"
	SpanValidateBatch = "iban.validate_batch"
	SpanCountryLookup = "iban.country_lookup"
)

// Attribute keys.
const (
	AttrIBANHash    = "iban.hash"
	AttrCountry     = "iban.country"
	AttrValid       = "iban.valid"
	AttrReason      = "iban.reason"
	AttrBatchSize   = "iban.batch.size"
	AttrBatchValid  = "iban.batch.valid"
	AttrConcurrency = "iban.batch.concurrency"
)

// Event names.
const (
	EventBatchCancelled = "batch.cancelled"
)
