package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/binpack/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to surface span completions on
// the logger. It is the only consumer of spans; there is no exporter.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge reporting to the given logger.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)

	if s.Status().Code == codes.Error {
		b.logger.Warn(fmt.Sprintf("%s failed after %s: %s", s.Name(), elapsed, s.Status().Description))
		return
	}

	b.logger.Info(fmt.Sprintf("%s took %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// SetupProvider installs a global TracerProvider that routes every span
// through the bridge.
func SetupProvider(bridge *Bridge) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}
