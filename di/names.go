package di

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// typeKeys assigns every reflect.Type exactly one key for the life of the
// process. Names alone are ambiguous: function-local types share their
// package-qualified name, and unnamed composites only render short package
// names. A type whose name is already taken by another type gets a "#n" suffix.
var typeKeys = struct {
	sync.Mutex
	byType map[reflect.Type]string
	byKey  map[string]reflect.Type
}{
	byType: make(map[reflect.Type]string),
	byKey:  make(map[string]reflect.Type),
}

// TypeKey derives the registration key for a type. Pointer levels become a
// "*" prefix and named types are qualified by their full package path. Distinct
// types always get distinct keys.
//
//	di.TypeKey(reflect.TypeOf(&Client{})) // "*example.com/app/clients.Client"
func TypeKey(t reflect.Type) string {
	if t == nil {
		return ""
	}

	typeKeys.Lock()
	defer typeKeys.Unlock()

	if key, ok := typeKeys.byType[t]; ok {
		return key
	}
	base := typeName(t)
	key := base
	for n := 2; ; n++ {
		if _, taken := typeKeys.byKey[key]; !taken {
			break
		}
		key = fmt.Sprintf("%s#%d", base, n)
	}
	typeKeys.byType[t] = key
	typeKeys.byKey[key] = t
	return key
}

func typeName(t reflect.Type) string {
	var prefix strings.Builder
	for t.Kind() == reflect.Pointer {
		prefix.WriteByte('*')
		t = t.Elem()
	}
	if t.PkgPath() != "" && t.Name() != "" {
		return prefix.String() + t.PkgPath() + "." + t.Name()
	}
	return prefix.String() + t.String()
}

// KeyOf returns the registration key for T. Interface types are supported.
func KeyOf[T any]() string {
	return TypeKey(reflect.TypeOf((*T)(nil)).Elem())
}
