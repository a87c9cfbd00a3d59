package keyed

import (
	"reflect"

	"github.com/kbukum/keyedi/errors"
)

// Sentinels for errors.Is. Returned errors carry details; these do not.
var (
	ErrKeyNotRegistered       = errors.Sentinel(errors.ErrCodeKeyNotRegistered)
	ErrFactoryNotRegistered   = errors.Sentinel(errors.ErrCodeFactoryNotRegistered)
	ErrUsedAfterBuild         = errors.Sentinel(errors.ErrCodeUsedAfterBuild)
	ErrImplementationMismatch = errors.Sentinel(errors.ErrCodeImplementationMismatch)
	ErrInvalidRegistration    = errors.Sentinel(errors.ErrCodeInvalidRegistration)
)

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func keyNotRegistered[K comparable, S any](key K) *errors.AppError {
	return errors.Newf(errors.ErrCodeKeyNotRegistered,
		"no implementation of %s registered for key %v", typeName[S](), key).
		WithDetails(map[string]any{
			"key":          key,
			"key_type":     typeName[K](),
			"service_type": typeName[S](),
		})
}

func factoryNotRegistered[K comparable, S any]() *errors.AppError {
	return errors.Newf(errors.ErrCodeFactoryNotRegistered,
		"no keyed factory registered for %s by %s", typeName[S](), typeName[K]()).
		WithDetails(map[string]any{
			"identity": FactoryKey[K, S](),
			"remedy":   "register implementations with keyed.AddByKey and call Build",
		})
}

func usedAfterBuild[K comparable, S any]() *errors.AppError {
	return errors.Newf(errors.ErrCodeUsedAfterBuild,
		"builder for %s by %s was already built", typeName[S](), typeName[K]()).
		WithDetails(map[string]any{
			"key_type":     typeName[K](),
			"service_type": typeName[S](),
		})
}

func implementationMismatch[S any](impl string, key any) *errors.AppError {
	return errors.Newf(errors.ErrCodeImplementationMismatch,
		"%s registered for key %v does not implement %s", impl, key, typeName[S]()).
		WithDetails(map[string]any{
			"key":            key,
			"implementation": impl,
			"service_type":   typeName[S](),
		})
}

func invalidRegistration(key any, reason string) *errors.AppError {
	return errors.Newf(errors.ErrCodeInvalidRegistration,
		"invalid registration for key %v: %s", key, reason).
		WithDetail("key", key)
}
