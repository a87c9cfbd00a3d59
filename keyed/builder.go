package keyed

import (
	"reflect"

	"github.com/kbukum/keyedi/di"
	"github.com/kbukum/keyedi/errors"
	"github.com/kbukum/keyedi/logger"
)

// Builder collects key to implementation mappings for service S and installs
// the resulting Factory in a container. A Builder is not safe for concurrent
// use and may be built once.
type Builder[K comparable, S any] struct {
	container di.Container
	regs      *registrations[K]
	built     bool
	err       error
}

func newBuilder[K comparable, S any](c di.Container, comparer Comparer[K]) *Builder[K, S] {
	b := &Builder[K, S]{
		container: c,
		regs:      newRegistrations(comparer),
	}
	if c == nil {
		b.record(errors.InvalidInput("container", "container must not be nil"))
	}
	return b
}

// Add maps key to the implementation type impl. The type is not checked
// against S; a mismatch surfaces as ErrImplementationMismatch from GetByKey.
// Use the package-level Add for a checked registration.
func (b *Builder[K, S]) Add(key K, impl reflect.Type) *Builder[K, S] {
	if b.built {
		b.record(usedAfterBuild[K, S]())
		return b
	}
	if impl == nil {
		b.record(invalidRegistration(key, "implementation type is nil"))
		return b
	}
	b.regs.add(key, impl)
	return b
}

// Build registers a transient Factory[K, S] in the container. It returns the
// first error recorded by Add, if any, without touching the container.
// Building again for the same K and S replaces the container binding;
// factories already resolved keep the registrations they were built with.
func (b *Builder[K, S]) Build() error {
	if b.err != nil {
		return b.err
	}
	if b.built {
		b.record(usedAfterBuild[K, S]())
		return b.err
	}

	regs := b.regs
	constructor := func(c di.Container) (Factory[K, S], error) {
		return newFactory[K, S](c, regs), nil
	}
	if err := b.container.RegisterTransient(FactoryKey[K, S](), constructor); err != nil {
		return err
	}
	b.built = true

	logger.Get("keyed").Debug("keyed factory built", logger.Fields(
		logger.FieldKeyType, typeName[K](),
		logger.FieldServiceType, typeName[S](),
		"keys", regs.len(),
	))
	return nil
}

// Err returns the first error recorded by the builder.
func (b *Builder[K, S]) Err() error { return b.err }

func (b *Builder[K, S]) record(err error) {
	if b.err == nil {
		b.err = err
	}
}
