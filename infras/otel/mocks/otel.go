package mocks

import (
	"resort/infras/otel"

	"go.opentelemetry.io/otel/trace/noop"
)

// NewOtel returns an Otel whose spans are discarded.
func NewOtel() otel.Otel {
	return otel.NewWithProvider(noop.NewTracerProvider())
}
