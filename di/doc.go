// Package di provides the dependency injection container that keyed
// factories resolve implementations from.
//
// Components are registered under string keys in one of four modes: eager
// (built at registration), lazy (built on first resolve and cached), singleton
// (a pre-built instance) and transient (built on every resolve). Constructors
// take no argument, a context.Context or the Container itself, and return the
// instance with an optional error.
//
// # Registration
//
//	c := di.NewContainer()
//	_ = c.RegisterTransient(di.KeyOf[*Client](), func(c di.Container) (*Client, error) {
//	    return NewClient(), nil
//	})
//
// Type-keyed helpers wrap the same calls:
//
//	_ = di.ProvideTransient(c, func(c di.Container) (*Client, error) { return NewClient(), nil })
//
// # Resolution
//
//	client := di.MustResolveType[*Client](c)
//
// Resolving a key that was never registered returns an error wrapping
// ErrNotRegistered.
package di
