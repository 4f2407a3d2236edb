package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTelemetry wires a span recorder and a manual metric reader.
func setupTestTelemetry(t *testing.T) (*Telemetry, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	tel, err := New(Config{Name: "test", TracerProvider: tp, MeterProvider: mp})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tel, recorder, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestTelemetry_Success(t *testing.T) {
	tel, recorder, reader := setupTestTelemetry(t)
	ctx := context.Background()

	ctx, span := tel.Start(ctx, "Spec")
	tel.Finish(ctx, span, 3, 2048, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	s := spans[0]
	if s.Name() != SpanGenerate {
		t.Errorf("span name = %q, want %q", s.Name(), SpanGenerate)
	}
	if s.Status().Code != codes.Ok {
		t.Errorf("span status = %v, want Ok", s.Status().Code)
	}
	found := false
	for _, kv := range s.Attributes() {
		if kv.Key == attribute.Key("specpdf.pages") && kv.Value.AsInt64() == 3 {
			found = true
		}
	}
	if !found {
		t.Error("span should carry specpdf.pages=3")
	}

	metrics := collect(t, reader)
	sum, ok := metrics[MetricDocuments].(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64] for %s, got %T", MetricDocuments, metrics[MetricDocuments])
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 1 {
		t.Errorf("documents = %d, want 1", total)
	}

	hist, ok := metrics[MetricPages].(metricdata.Histogram[int64])
	if !ok {
		t.Fatalf("expected Histogram[int64] for %s, got %T", MetricPages, metrics[MetricPages])
	}
	if len(hist.DataPoints) != 1 || hist.DataPoints[0].Sum != 3 {
		t.Errorf("pages histogram = %+v, want one observation of 3", hist.DataPoints)
	}
}

func TestTelemetry_Failure(t *testing.T) {
	tel, recorder, reader := setupTestTelemetry(t)
	ctx := context.Background()

	ctx, span := tel.Start(ctx, "Spec")
	tel.Finish(ctx, span, 0, 0, errors.New("stream length mismatch"))

	s := recorder.Ended()[0]
	if s.Status().Code != codes.Error {
		t.Errorf("span status = %v, want Error", s.Status().Code)
	}
	if len(s.Events()) == 0 {
		t.Error("failed span should record an error event")
	}

	metrics := collect(t, reader)
	if _, ok := metrics[MetricPages]; ok {
		t.Error("no page observation expected for a failed generation")
	}
	sum := metrics[MetricDocuments].(metricdata.Sum[int64])
	for _, dp := range sum.DataPoints {
		if v, _ := dp.Attributes.Value("success"); v.AsBool() {
			t.Error("failed generation counted as success")
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	tel, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx, span := tel.Start(context.Background(), "x")
	tel.Finish(ctx, span, 1, 10, nil)
}
