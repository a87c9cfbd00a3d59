// Package keyed resolves one of several implementations of a service by a key
// supplied at call time.
//
// Implementations are registered against a container with a Builder. Build
// installs a Factory in the container as a transient component; each resolve
// of the factory wraps the same frozen registration set and the resolving
// container. GetByKey maps the key to its implementation type and asks the
// container to construct it, so implementations keep their own constructor
// injection and lifetimes.
//
// # Registration
//
//	c := di.NewContainer()
//	_ = di.ProvideTransient(c, func(di.Container) (*ListSequence, error) { return &ListSequence{}, nil })
//	_ = di.ProvideTransient(c, func(di.Container) (*SetSequence, error) { return &SetSequence{}, nil })
//
//	b := keyed.AddByName[Sequence](c, keyed.IgnoreCase())
//	keyed.Add[*ListSequence](b, "list")
//	keyed.Add[*SetSequence](b, "hashSet")
//	if err := b.Build(); err != nil {
//	    return err
//	}
//
// # Resolution
//
//	seq, err := keyed.GetServiceByName[Sequence](c, "LIST")
//
// Constructors that need several implementations can depend on the factory
// itself:
//
//	f, err := di.ResolveType[keyed.Factory[string, Sequence]](c)
//	seq, err := f.GetByKey("hashSet")
//
// # Keys
//
// Keys are compared through a Comparer fixed when the builder is created.
// DefaultComparer uses Go equality; IgnoreCase folds string keys. Registering
// the same key twice keeps the last implementation.
//
// # Errors
//
// Failures are *errors.AppError values matched with errors.Is against
// ErrKeyNotRegistered, ErrFactoryNotRegistered, ErrUsedAfterBuild and
// ErrImplementationMismatch. Errors raised by the container while constructing
// an implementation are returned as the container produced them.
package keyed
