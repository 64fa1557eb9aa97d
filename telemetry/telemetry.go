// Package telemetry installs an OpenTelemetry TracerProvider that exports the
// deltastep.Run span (and the CLI's own spans) over OTLP.
//
// When config.TelemetryConfig.Enabled is false, Init leaves the global no-op
// provider in place and returns a no-op shutdown.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/deltastep/config"
)

// ShutdownFunc flushes and stops the TracerProvider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(_ context.Context) error { return nil }

// Init builds the exporter, sampler and resource described by cfg and sets the
// global TracerProvider and propagator.
func Init(ctx context.Context, cfg config.TelemetryConfig) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	res, err := buildResource(cfg)
	if err != nil {
		return noopShutdown, fmt.Errorf("telemetry: resource: %w", err)
	}

	exporter, err := createExporter(ctx, cfg)
	if err != nil {
		return noopShutdown, fmt.Errorf("telemetry: exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(createSampler(cfg)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}
