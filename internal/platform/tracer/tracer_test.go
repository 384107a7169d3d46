package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"iban-gateway/internal/platform/tracer"
)

func TestNoopTracer(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanValidate, tracer.String("key", "value"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Bool(tracer.AttrValid, true))
	span.AddEvent(tracer.EventBatchCancelled, tracer.Int(tracer.AttrBatchSize, 3))
	assert.Empty(t, span.TraceID())
	span.End(errors.New("ignored"))
}

func TestOTelTracerRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tr := tracer.NewOTel(tracer.WithTracerProvider(tp))

	t.Run("successful span carries attributes", func(t *testing.T) {
		_, span := tr.Start(context.Background(), tracer.SpanValidate,
			tracer.String(tracer.AttrCountry, "DE"),
			tracer.Duration("elapsed", 1500*time.Microsecond),
		)
		span.SetAttributes(tracer.Bool(tracer.AttrValid, true), tracer.Int(tracer.AttrBatchSize, 2))
		span.AddEvent(tracer.EventBatchCancelled)
		assert.Len(t, span.TraceID(), 32)
		span.End(nil)

		ended := recorder.Ended()
		require.NotEmpty(t, ended)
		got := ended[len(ended)-1]
		assert.Equal(t, tracer.SpanValidate, got.Name())
		assert.Contains(t, got.Attributes(), attribute.String(tracer.AttrCountry, "DE"))
		assert.Contains(t, got.Attributes(), attribute.Bool(tracer.AttrValid, true))
		assert.Contains(t, got.Attributes(), attribute.Int64("elapsed", 1))
		assert.Equal(t, codes.Unset, got.Status().Code)
		require.Len(t, got.Events(), 1)
	})

	t.Run("error marks the span failed", func(t *testing.T) {
		_, span := tr.Start(context.Background(), tracer.SpanValidateBatch)
		span.End(errors.New("deadline"))

		ended := recorder.Ended()
		got := ended[len(ended)-1]
		assert.Equal(t, codes.Error, got.Status().Code)
		assert.Equal(t, "deadline", got.Status().Description)
	})
}

func TestHashIBAN(t *testing.T) {
	assert.Empty(t, tracer.HashIBAN(""))

	h := tracer.HashIBAN("DE89370400440532013000")
	assert.Len(t, h, 16)
	assert.Equal(t, h, tracer.HashIBAN("DE89370400440532013000"))
	assert.NotEqual(t, h, tracer.HashIBAN("DE89370400440532013001"))
	assert.NotContains(t, h, "370400440532013000")
}
