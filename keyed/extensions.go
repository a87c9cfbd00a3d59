package keyed

import (
	stderrors "errors"
	"fmt"
	"reflect"

	"github.com/kbukum/keyedi/di"
	"github.com/kbukum/keyedi/errors"
)

// AddByKey starts registering implementations of S keyed by K in c. The
// first comparer, if given, decides key equality; DefaultComparer is used
// otherwise.
func AddByKey[K comparable, S any](c di.Container, comparer ...Comparer[K]) *Builder[K, S] {
	var cmp Comparer[K]
	if len(comparer) > 0 {
		cmp = comparer[0]
	}
	return newBuilder[K, S](c, cmp)
}

// AddByName is AddByKey for string keys.
func AddByName[S any](c di.Container, comparer ...Comparer[string]) *Builder[string, S] {
	return AddByKey[string, S](c, comparer...)
}

// Add maps key to TImpl after checking that TImpl implements S. A mismatch is
// recorded on the builder and returned by Build.
//
//	keyed.Add[*ListSequence](b, "list")
func Add[TImpl any, K comparable, S any](b *Builder[K, S], key K) *Builder[K, S] {
	impl := reflect.TypeFor[TImpl]()
	if !b.built && !impl.AssignableTo(reflect.TypeFor[S]()) {
		b.record(implementationMismatch[S](impl.String(), key))
		return b
	}
	return b.Add(key, impl)
}

// FactoryKey returns the container key of the Factory[K, S] binding.
func FactoryKey[K comparable, S any]() string {
	return di.KeyOf[Factory[K, S]]()
}

// GetServiceByKey resolves the Factory[K, S] registered in c and returns the
// implementation registered for key. It fails with ErrFactoryNotRegistered if
// no builder for K and S has been built in c.
func GetServiceByKey[K comparable, S any](c di.Container, key K) (S, error) {
	var zero S
	if c == nil {
		return zero, errors.InvalidInput("container", "container must not be nil")
	}

	instance, err := c.Resolve(FactoryKey[K, S]())
	if err != nil {
		if stderrors.Is(err, di.ErrNotRegistered) {
			return zero, factoryNotRegistered[K, S]().WithCause(err)
		}
		return zero, err
	}

	f, ok := instance.(Factory[K, S])
	if !ok {
		return zero, implementationMismatch[Factory[K, S]](fmt.Sprintf("%T", instance), FactoryKey[K, S]())
	}
	return f.GetByKey(key)
}

// GetServiceByName is GetServiceByKey for string keys.
func GetServiceByName[S any](c di.Container, name string) (S, error) {
	return GetServiceByKey[string, S](c, name)
}

// MustGetServiceByKey is GetServiceByKey that panics on error.
func MustGetServiceByKey[K comparable, S any](c di.Container, key K) S {
	service, err := GetServiceByKey[K, S](c, key)
	if err != nil {
		panic(fmt.Sprintf("keyed: failed to resolve %s for key %v: %v", typeName[S](), key, err))
	}
	return service
}

// MustGetServiceByName is MustGetServiceByKey for string keys.
func MustGetServiceByName[S any](c di.Container, name string) S {
	return MustGetServiceByKey[string, S](c, name)
}
