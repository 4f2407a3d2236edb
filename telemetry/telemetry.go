// Package telemetry provides OpenTelemetry tracing and metrics around
// document generation.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Instrument and span names.
const (
	SpanGenerate     = "specpdf.generate"
	MetricDocuments  = "specpdf.documents"
	MetricPages      = "specpdf.pages"
	defaultScopeName = "github.com/benedoc-inc/specpdf"
)

// Config configures a Telemetry. Nil providers fall back to the otel
// globals, which are no-ops until an SDK is installed.
type Config struct {
	// Name is the instrumentation scope name.
	Name string
	// Version is the instrumentation scope version.
	Version        string
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// DefaultConfig returns a configuration using the global providers.
func DefaultConfig() Config {
	return Config{
		Name:    defaultScopeName,
		Version: "1.0.0",
	}
}

// Telemetry records one span and two metrics per generated document.
type Telemetry struct {
	tracer    trace.Tracer
	documents metric.Int64Counter
	pages     metric.Int64Histogram
}

// New creates a Telemetry and its instruments.
func New(config Config) (*Telemetry, error) {
	if config.Name == "" {
		config.Name = defaultScopeName
	}
	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	mp := config.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	meter := mp.Meter(config.Name, metric.WithInstrumentationVersion(config.Version))
	t := &Telemetry{
		tracer: tp.Tracer(config.Name, trace.WithInstrumentationVersion(config.Version)),
	}

	var err error
	t.documents, err = meter.Int64Counter(
		MetricDocuments,
		metric.WithDescription("Number of generated documents"),
		metric.WithUnit("{document}"),
	)
	if err != nil {
		return nil, err
	}

	t.pages, err = meter.Int64Histogram(
		MetricPages,
		metric.WithDescription("Pages per generated document"),
		metric.WithUnit("{page}"),
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Start opens the generation span.
func (t *Telemetry) Start(ctx context.Context, title string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanGenerate, trace.WithAttributes(
		attribute.Int("specpdf.title_length", len(title)),
	))
}

// Finish records the outcome of a generation and ends span. err is nil on
// success.
func (t *Telemetry) Finish(ctx context.Context, span trace.Span, pages, size int, err error) {
	success := err == nil
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	t.documents.Add(ctx, 1, attrs)

	if success {
		t.pages.Record(ctx, int64(pages))
		span.SetAttributes(
			attribute.Int("specpdf.pages", pages),
			attribute.Int("specpdf.bytes", size),
		)
		span.SetStatus(codes.Ok, "")
	} else {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
