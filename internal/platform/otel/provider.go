package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Options configures trace export. The zero value exports nothing.
type Options struct {
	ServiceName string
	// Endpoint is the OTLP/HTTP collector URL, e.g. http://localhost:4318.
	Endpoint string
	Enabled  bool
	// SampleRatio is the fraction of root spans kept. Zero keeps all.
	SampleRatio float64
}

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Active reports whether opts would install an exporting provider.
func (o Options) Active() bool {
	return o.Enabled && o.Endpoint != ""
}

func (o Options) sampler() (sdktrace.Sampler, error) {
	switch {
	case o.SampleRatio < 0 || o.SampleRatio > 1:
		return nil, fmt.Errorf("otel: sample ratio %v outside [0, 1]", o.SampleRatio)
	case o.SampleRatio == 0 || o.SampleRatio == 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample()), nil
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(o.SampleRatio)), nil
	}
}

// Setup installs the global tracer provider described by opts. When tracing
// is inactive the global provider is left untouched and the returned
// ShutdownFunc does nothing.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	if !opts.Active() {
		return noopShutdown, nil
	}
	if opts.ServiceName == "" {
		return noopShutdown, errors.New("otel: service name is required")
	}
	sampler, err := opts.sampler()
	if err != nil {
		return noopShutdown, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(semconv.ServiceName(opts.ServiceName)))
	if err != nil {
		return noopShutdown, fmt.Errorf("otel: resource: %w", err)
	}
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(opts.Endpoint))
	if err != nil {
		return noopShutdown, fmt.Errorf("otel: exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}
