package keyed

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kbukum/keyedi/di"
	"github.com/kbukum/keyedi/logger"
	"github.com/kbukum/keyedi/observability"
)

// Factory resolves implementations of S by key.
type Factory[K comparable, S any] interface {
	// GetByKey constructs the implementation registered for key through the
	// container it was resolved from.
	GetByKey(key K) (S, error)
	// Keys lists the registered keys in canonical form.
	Keys() []K
}

type factory[K comparable, S any] struct {
	container di.Container
	regs      *registrations[K]
	metrics   *observability.Metrics
}

// metricsProvider is implemented by containers that record metrics.
type metricsProvider interface {
	Metrics() *observability.Metrics
}

func newFactory[K comparable, S any](c di.Container, regs *registrations[K]) *factory[K, S] {
	f := &factory[K, S]{container: c, regs: regs}
	if mp, ok := c.(metricsProvider); ok {
		f.metrics = mp.Metrics()
	}
	return f
}

func (f *factory[K, S]) GetByKey(key K) (S, error) {
	var zero S

	impl, ok := f.regs.lookup(key)
	if !ok {
		f.record(observability.StatusError)
		logger.Get("keyed").Debug("key not registered", logger.Fields(
			logger.FieldKey, key,
			logger.FieldKeyType, typeName[K](),
			logger.FieldServiceType, typeName[S](),
		))
		return zero, keyNotRegistered[K, S](key)
	}

	instance, err := f.container.Resolve(di.TypeKey(impl))
	if err != nil {
		f.record(observability.StatusError)
		return zero, err
	}

	// A concrete registration must come back as exactly that type.
	if impl.Kind() != reflect.Interface && reflect.TypeOf(instance) != impl {
		f.record(observability.StatusError)
		return zero, implementationMismatch[S](fmt.Sprintf("%s (resolved %T)", impl, instance), key)
	}

	service, ok := instance.(S)
	if !ok {
		f.record(observability.StatusError)
		return zero, implementationMismatch[S](impl.String(), key)
	}
	f.record(observability.StatusOK)
	return service, nil
}

func (f *factory[K, S]) Keys() []K {
	return f.regs.keys()
}

func (f *factory[K, S]) record(status string) {
	f.metrics.RecordLookup(context.Background(), typeName[K](), typeName[S](), status)
}
