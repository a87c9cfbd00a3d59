package keyed

import (
	"fmt"
	"reflect"
	"sort"
)

// registrations maps canonical keys to implementation types. It is mutated
// only by its Builder and is read-only once the Builder has been built.
type registrations[K comparable] struct {
	comparer Comparer[K]
	types    map[K]reflect.Type
}

func newRegistrations[K comparable](comparer Comparer[K]) *registrations[K] {
	if f, ok := comparer.(ComparerFunc[K]); comparer == nil || (ok && f == nil) {
		comparer = DefaultComparer[K]()
	}
	return &registrations[K]{
		comparer: comparer,
		types:    make(map[K]reflect.Type),
	}
}

// add inserts or replaces the implementation registered for key.
func (r *registrations[K]) add(key K, impl reflect.Type) {
	r.types[r.comparer.Canonical(key)] = impl
}

func (r *registrations[K]) lookup(key K) (reflect.Type, bool) {
	impl, ok := r.types[r.comparer.Canonical(key)]
	return impl, ok
}

func (r *registrations[K]) len() int { return len(r.types) }

// keys returns the canonical keys ordered by their fmt rendering.
func (r *registrations[K]) keys() []K {
	out := make([]K, 0, len(r.types))
	for k := range r.types {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
	})
	return out
}
