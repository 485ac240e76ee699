package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	tracer := otel.NewWithProvider(provider)

	_, scope := tracer.NewScope(context.Background(), "service", "service.billing.CheckOut")
	scope.SetAttributes(map[string]any{
		"reservation.id": "res-1",
		"amount.paid":    120.5,
		"nights":         3,
		"checked_out_at": time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC),
	})
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("insufficient payment"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.billing.CheckOut", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "insufficient payment", span.Status().Description)

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "res-1", attrs["reservation.id"])
	assert.Equal(t, "120.5", attrs["amount.paid"])
	assert.Equal(t, "3", attrs["nights"])
	assert.Equal(t, "2025-06-04T11:00:00Z", attrs["checked_out_at"])
}
