package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestNewMetrics_Noop(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	ctx := context.Background()
	metrics.RecordResolution(ctx, "svc", "transient", StatusOK, time.Millisecond)
	metrics.RecordLookup(ctx, "string", "Sequence", StatusOK)
}

func TestNilMetricsRecordsNothing(t *testing.T) {
	var m *Metrics
	m.RecordResolution(context.Background(), "svc", "lazy", StatusOK, 0)
	m.RecordLookup(context.Background(), "string", "Sequence", StatusError)
}

func TestMetrics_RecordsCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	metrics, err := NewMetrics(provider.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordResolution(ctx, "list", "transient", StatusOK, 2*time.Millisecond)
	metrics.RecordResolution(ctx, "list", "transient", StatusOK, time.Millisecond)
	metrics.RecordLookup(ctx, "string", "Sequence", StatusError)

	got := collect(t, reader)

	res, ok := got[MetricResolutionTotal]
	if !ok {
		t.Fatalf("expected %s to be collected", MetricResolutionTotal)
	}
	sum, ok := res.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", res.Data)
	}
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 2 {
		t.Errorf("expected one data point with value 2, got %+v", sum.DataPoints)
	}

	lookup := got[MetricLookupTotal].Data.(metricdata.Sum[int64])
	if len(lookup.DataPoints) != 1 {
		t.Fatalf("expected one lookup data point, got %d", len(lookup.DataPoints))
	}
	status, _ := lookup.DataPoints[0].Attributes.Value(attribute.Key("status"))
	if status.AsString() != StatusError {
		t.Errorf("expected status=error, got %q", status.AsString())
	}

	if _, ok := got[MetricResolutionDuration]; !ok {
		t.Errorf("expected %s to be collected", MetricResolutionDuration)
	}
}

func TestStatusOf(t *testing.T) {
	if StatusOf(nil) != StatusOK {
		t.Error("expected ok for nil error")
	}
	if StatusOf(fmt.Errorf("x")) != StatusError {
		t.Error("expected error for non-nil error")
	}
}

func TestMeter_DefaultName(t *testing.T) {
	if Meter("") == nil {
		t.Fatal("expected a meter from the global provider")
	}
}
