package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultMeterName is the instrumentation scope used by Meter when no name is given.
const DefaultMeterName = "github.com/kbukum/keyedi"

// Metric names.
const (
	MetricResolutionTotal    = "di.resolution.total"
	MetricResolutionDuration = "di.resolution.duration"
	MetricLookupTotal        = "keyed.lookup.total"
)

// Status attribute values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	if name == "" {
		name = DefaultMeterName
	}
	return otel.Meter(name)
}

// Metrics holds the instruments recorded by the container and keyed factories.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	resolutionTotal    metric.Int64Counter
	resolutionDuration metric.Float64Histogram
	lookupTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	resolutionTotal, err := meter.Int64Counter(MetricResolutionTotal,
		metric.WithDescription("Total number of container resolutions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricResolutionTotal, err)
	}

	resolutionDuration, err := meter.Float64Histogram(MetricResolutionDuration,
		metric.WithDescription("Duration of container resolutions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricResolutionDuration, err)
	}

	lookupTotal, err := meter.Int64Counter(MetricLookupTotal,
		metric.WithDescription("Total number of keyed lookups"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricLookupTotal, err)
	}

	return &Metrics{
		resolutionTotal:    resolutionTotal,
		resolutionDuration: resolutionDuration,
		lookupTotal:        lookupTotal,
	}, nil
}

// RecordResolution records one container resolution of component in the given mode.
func (m *Metrics) RecordResolution(ctx context.Context, component, mode, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.resolutionTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("mode", mode),
		attribute.String("status", status),
	))
	m.resolutionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("mode", mode),
	))
}

// RecordLookup records one keyed lookup for the (keyType, serviceType) pair.
func (m *Metrics) RecordLookup(ctx context.Context, keyType, serviceType, status string) {
	if m == nil {
		return
	}
	m.lookupTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key_type", keyType),
		attribute.String("service_type", serviceType),
		attribute.String("status", status),
	))
}

// StatusOf maps an error to a status attribute value.
func StatusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
