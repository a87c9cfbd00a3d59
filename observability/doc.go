// Package observability provides OpenTelemetry metric instruments for the
// container and the keyed resolution layer.
//
// The package never installs a provider or exporter; the host application
// owns that. Instruments are created on whatever meter is supplied:
//
//	metrics, err := observability.NewMetrics(observability.Meter("keyedi"))
//	c := di.NewContainer(di.WithMetrics(metrics))
package observability
