// Command keyed-demo registers two Sequence implementations under keys,
// resolves them by key and logs what came back.
package main

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kbukum/keyedi/config"
	"github.com/kbukum/keyedi/di"
	"github.com/kbukum/keyedi/keyed"
	"github.com/kbukum/keyedi/logger"
	"github.com/kbukum/keyedi/observability"
	"github.com/kbukum/keyedi/version"
)

const serviceName = "keyed-demo"

var sample = []int{3, 1, 3, 2, 1}

// Report holds the sequence a factory-dependent component picked.
type Report struct{ Seq Sequence }

func main() {
	if err := run(context.Background()); err != nil {
		logger.Error("keyed-demo failed", logger.ErrorFields("run", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg config.Config
	if err := config.Load(serviceName, &cfg); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.SetGlobalLogger(logger.New(&cfg.Logging, cfg.Name))
	log := logger.WithComponent("demo")
	log.Info("starting", version.Get().Fields())

	var opts []di.Option
	var reader *sdkmetric.ManualReader
	if cfg.Metrics.Enabled {
		reader = sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = provider.Shutdown(ctx) }()
		otel.SetMeterProvider(provider)

		metrics, err := observability.NewMetrics(observability.Meter(cfg.Metrics.MeterName))
		if err != nil {
			return err
		}
		opts = append(opts, di.WithMetrics(metrics))
	}

	c := di.NewContainer(opts...)
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn("closing container", logger.ErrorFields("close", err))
		}
	}()

	if err := register(c, cfg.Keys); err != nil {
		return err
	}

	for _, key := range []string{"list", "hashSet", "LIST", "queue"} {
		seq, err := keyed.GetServiceByName[Sequence](c, key)
		if err != nil {
			log.Warn("lookup failed", logger.MergeWithError(logger.Fields(logger.FieldKey, key), err))
			continue
		}
		seq.Append(sample...)
		log.Info("resolved", logger.Fields(
			logger.FieldKey, key,
			logger.FieldImplType, fmt.Sprintf("%T", seq),
			"values", seq.Values(),
		))
	}

	report, err := di.ResolveType[*Report](c)
	if err != nil {
		return err
	}
	log.Info("report resolved", logger.Fields(logger.FieldImplType, fmt.Sprintf("%T", report.Seq)))

	if reader != nil {
		return logMetrics(ctx, reader, log)
	}
	return nil
}

func register(c di.Container, keys config.KeysConfig) error {
	if err := di.ProvideTransient(c, func(di.Container) (*ListSequence, error) {
		return &ListSequence{}, nil
	}); err != nil {
		return err
	}
	if err := di.ProvideTransient(c, func(di.Container) (*SetSequence, error) {
		return NewSetSequence(), nil
	}); err != nil {
		return err
	}
	if err := di.ProvideTransient(c, func(c di.Container) (*Report, error) {
		f, err := di.ResolveType[keyed.Factory[string, Sequence]](c)
		if err != nil {
			return nil, err
		}
		seq, err := f.GetByKey("hashSet")
		if err != nil {
			return nil, err
		}
		return &Report{Seq: seq}, nil
	}); err != nil {
		return err
	}

	comparer := keyed.DefaultComparer[string]()
	if keys.IgnoreCase {
		comparer = keyed.IgnoreCase()
	}
	b := keyed.AddByName[Sequence](c, comparer)
	keyed.Add[*ListSequence](b, "list")
	keyed.Add[*SetSequence](b, "hashSet")
	return b.Build()
}

func logMetrics(ctx context.Context, reader *sdkmetric.ManualReader, log *logger.Logger) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collecting metrics: %w", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			log.Info("metric", logger.Fields("name", m.Name, "total", total))
		}
	}
	return nil
}
