package keyed

import "golang.org/x/text/cases"

// Comparer decides key equality. Two keys are equal when their canonical forms
// compare equal with ==.
type Comparer[K comparable] interface {
	Canonical(key K) K
}

// ComparerFunc adapts a canonicalizing function to a Comparer.
type ComparerFunc[K comparable] func(key K) K

// Canonical calls f(key).
func (f ComparerFunc[K]) Canonical(key K) K { return f(key) }

type identityComparer[K comparable] struct{}

func (identityComparer[K]) Canonical(key K) K { return key }

// DefaultComparer compares keys with ==.
func DefaultComparer[K comparable]() Comparer[K] {
	return identityComparer[K]{}
}

// IgnoreCase compares string keys by their Unicode case folding, so "list",
// "List" and "LIST" are the same key.
func IgnoreCase() Comparer[string] {
	return ComparerFunc[string](func(key string) string {
		// A Caser carries state and must not be shared between goroutines.
		return cases.Fold().String(key)
	})
}
