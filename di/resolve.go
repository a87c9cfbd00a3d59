package di

import "fmt"

// MustResolve resolves a component with type safety, panics on error.
//
// Example:
//
//	repo := di.MustResolve[contracts.Repository](c, "repository")
func MustResolve[T any](c Container, key string) T {
	instance, err := c.Resolve(key)
	if err != nil {
		panic(fmt.Sprintf("di: failed to resolve %s: %v", key, err))
	}
	result, ok := instance.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("di: component %s is %T, expected %T", key, instance, zero))
	}
	return result
}

// Resolve resolves a component with type safety, returns error on failure.
//
// Example:
//
//	repo, err := di.Resolve[contracts.Repository](c, "repository")
//	if err != nil {
//	    return fmt.Errorf("failed to get repository: %w", err)
//	}
func Resolve[T any](c Container, key string) (T, error) {
	var zero T
	instance, err := c.Resolve(key)
	if err != nil {
		return zero, fmt.Errorf("di: failed to resolve %s: %w", key, err)
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("di: component %s is %T, expected %T", key, instance, zero)
	}
	return result, nil
}

// TryResolve resolves a component, returns zero value and false if not found.
//
// Example:
//
//	if metrics, ok := di.TryResolve[MetricsClient](c, "metrics"); ok {
//	    metrics.RecordEvent(...)
//	}
func TryResolve[T any](c Container, key string) (T, bool) {
	var zero T
	instance, err := c.Resolve(key)
	if err != nil {
		return zero, false
	}
	result, ok := instance.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// ResolveType resolves the component registered under KeyOf[T]().
func ResolveType[T any](c Container) (T, error) {
	return Resolve[T](c, KeyOf[T]())
}

// MustResolveType is ResolveType that panics on error.
func MustResolveType[T any](c Container) T {
	return MustResolve[T](c, KeyOf[T]())
}

// ProvideTransient registers constructor under KeyOf[T]() so that every
// resolve builds a new T.
//
//	di.ProvideTransient(c, func(c di.Container) (*Client, error) { ... })
func ProvideTransient[T any](c Container, constructor func(Container) (T, error)) error {
	return c.RegisterTransient(KeyOf[T](), constructor)
}

// ProvideLazy registers constructor under KeyOf[T]() and caches the first instance.
func ProvideLazy[T any](c Container, constructor func(Container) (T, error)) error {
	return c.RegisterLazy(KeyOf[T](), constructor)
}

// ProvideSingleton registers instance under KeyOf[T]().
func ProvideSingleton[T any](c Container, instance T) error {
	return c.RegisterSingleton(KeyOf[T](), instance)
}
