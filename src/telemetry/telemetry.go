// Package telemetry provides optional OpenTelemetry tracing for the two
// network calls the workspace makes.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentation = "codescript"

// Config holds telemetry configuration.
type Config struct {
	Enabled     bool
	Endpoint    string // OTLP/HTTP collector, e.g. "localhost:4318"
	ServiceName string
	Version     string
}

// DefaultConfig returns a disabled configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		Endpoint:    "localhost:4318",
		ServiceName: "codescript",
		Version:     "dev",
	}
}

var (
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
	enabled  bool
)

// Init installs the global tracer. With tracing disabled every span is a
// no-op.
func Init(ctx context.Context, cfg Config) error {
	if !cfg.Enabled {
		enabled = false
		tracer = otel.Tracer(instrumentation + "-noop")
		return nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
	)

	provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	tracer = provider.Tracer(instrumentation)
	enabled = true
	return nil
}

// Shutdown flushes pending spans.
func Shutdown(ctx context.Context) error {
	if provider == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return provider.Shutdown(shutdownCtx)
}

// Enabled returns whether spans are exported.
func Enabled() bool { return enabled }

// Tracer returns the global tracer.
func Tracer() trace.Tracer {
	if tracer == nil {
		return otel.Tracer(instrumentation + "-noop")
	}
	return tracer
}

// RequestSpan wraps the span of one outgoing HTTP call.
type RequestSpan struct {
	span  trace.Span
	start time.Time
}

// StartRequestSpan starts a client span for an HTTP call.
func StartRequestSpan(ctx context.Context, name, method, url string) (context.Context, *RequestSpan) {
	ctx, span := Tracer().Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
		),
	)
	return ctx, &RequestSpan{span: span, start: time.Now()}
}

// SetStatus records the response status code.
func (s *RequestSpan) SetStatus(code int) {
	s.span.SetAttributes(attribute.Int("http.response.status_code", code))
}

// SetError marks the span failed.
func (s *RequestSpan) SetError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// End completes the span.
func (s *RequestSpan) End() {
	s.span.SetAttributes(attribute.Int64("latency_ms", time.Since(s.start).Milliseconds()))
	s.span.End()
}
