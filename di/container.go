package di

import (
	"context"
	stderrors "errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/keyedi/logger"
	"github.com/kbukum/keyedi/observability"
)

// RegistrationMode determines how a component should be resolved
type RegistrationMode int

const (
	Eager     RegistrationMode = iota // Initialize immediately on registration
	Lazy                              // Initialize on first resolve, then cached
	Singleton                         // Pre-created instance
	Transient                         // New instance on every resolve
)

// String returns the lowercase name of the mode.
func (m RegistrationMode) String() string {
	switch m {
	case Eager:
		return "eager"
	case Lazy:
		return "lazy"
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ErrNotRegistered is wrapped by every Resolve error caused by a missing key.
var ErrNotRegistered = stderrors.New("component not registered")

// Container defines the interface for a dependency injection container
type Container interface {
	Register(key string, constructor interface{}) error
	RegisterLazy(key string, constructor interface{}) error
	RegisterEager(key string, constructor interface{}) error
	RegisterTransient(key string, constructor interface{}) error
	RegisterSingleton(key string, instance interface{}) error
	Resolve(key string) (interface{}, error)
	Has(key string) bool
	Close() error

	// Introspection
	Registrations() []RegistrationInfo
}

// RegistrationInfo describes a registered component for introspection.
type RegistrationInfo struct {
	Key         string
	Mode        RegistrationMode
	Initialized bool
}

// UnifiedContainer is the default Container implementation.
// All methods are safe for concurrent use.
type UnifiedContainer struct {
	id         string
	components map[string]*ComponentRegistration
	singletons map[string]interface{}
	metrics    *observability.Metrics
	mutex      sync.RWMutex
}

type ComponentRegistration struct {
	key         string
	constructor interface{}
	mode        RegistrationMode
	instance    interface{}
	mutex       sync.RWMutex
	initialized bool
}

// Option configures a UnifiedContainer.
type Option func(*UnifiedContainer)

// WithMetrics records resolution metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *UnifiedContainer) {
		c.metrics = m
	}
}

// WithID overrides the generated container id used in log fields.
func WithID(id string) Option {
	return func(c *UnifiedContainer) {
		if id != "" {
			c.id = id
		}
	}
}

func NewContainer(opts ...Option) Container {
	return newUnifiedContainer(opts...)
}

func newUnifiedContainer(opts ...Option) *UnifiedContainer {
	c := &UnifiedContainer{
		id:         uuid.NewString(),
		components: make(map[string]*ComponentRegistration),
		singletons: make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the container id used in log fields.
func (c *UnifiedContainer) ID() string { return c.id }

// Metrics returns the metric instruments the container records on, or nil.
func (c *UnifiedContainer) Metrics() *observability.Metrics { return c.metrics }

func (c *UnifiedContainer) log() *logger.Logger {
	return logger.Get("di").WithFields(logger.Fields(logger.FieldContainerID, c.id))
}

// Register component with lazy loading by default (most common case)
func (c *UnifiedContainer) Register(key string, constructor interface{}) error {
	return c.RegisterLazy(key, constructor)
}

// RegisterLazy registers a component that is constructed on first resolve and cached.
func (c *UnifiedContainer) RegisterLazy(key string, constructor interface{}) error {
	return c.register(key, constructor, Lazy)
}

// RegisterTransient registers a component whose constructor runs on every resolve.
func (c *UnifiedContainer) RegisterTransient(key string, constructor interface{}) error {
	return c.register(key, constructor, Transient)
}

// RegisterEager registers a component for immediate initialization.
// The constructor runs before the container lock is taken, so it may resolve
// other components.
func (c *UnifiedContainer) RegisterEager(key string, constructor interface{}) error {
	if err := validateConstructor(key, constructor); err != nil {
		return err
	}

	instance, err := c.callConstructor(constructor)
	if err != nil {
		return fmt.Errorf("failed to initialize eager component '%s': %w", key, err)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.singletons, key)
	c.components[key] = &ComponentRegistration{
		key:         key,
		constructor: constructor,
		mode:        Eager,
		instance:    instance,
		initialized: true,
	}
	c.log().Debug("component registered", logger.Fields(logger.FieldComponent, key, logger.FieldMode, Eager.String()))
	return nil
}

func (c *UnifiedContainer) register(key string, constructor interface{}, mode RegistrationMode) error {
	if err := validateConstructor(key, constructor); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	// A later registration for the same key replaces the earlier one.
	delete(c.singletons, key)
	c.components[key] = &ComponentRegistration{
		key:         key,
		constructor: constructor,
		mode:        mode,
	}
	c.log().Debug("component registered", logger.Fields(logger.FieldComponent, key, logger.FieldMode, mode.String()))
	return nil
}

// RegisterSingleton registers a pre-created instance
func (c *UnifiedContainer) RegisterSingleton(key string, instance interface{}) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.components, key)
	c.singletons[key] = instance
	c.log().Debug("component registered", logger.Fields(logger.FieldComponent, key, logger.FieldMode, Singleton.String()))
	return nil
}

// Has reports whether key is registered in any mode.
func (c *UnifiedContainer) Has(key string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if _, ok := c.singletons[key]; ok {
		return true
	}
	_, ok := c.components[key]
	return ok
}

// Resolve gets a component instance
func (c *UnifiedContainer) Resolve(key string) (interface{}, error) {
	start := time.Now()

	// Check singletons first
	c.mutex.RLock()
	if singleton, exists := c.singletons[key]; exists {
		c.mutex.RUnlock()
		c.metrics.RecordResolution(context.Background(), key, Singleton.String(), observability.StatusOK, time.Since(start))
		return singleton, nil
	}

	registration, exists := c.components[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}

	instance, err := c.resolveComponent(registration)
	c.metrics.RecordResolution(context.Background(), key, registration.mode.String(), observability.StatusOf(err), time.Since(start))
	if err != nil {
		c.log().Debug("component resolution failed", logger.MergeWithError(logger.Fields(logger.FieldComponent, key), err))
	}
	return instance, err
}

func (c *UnifiedContainer) resolveComponent(registration *ComponentRegistration) (interface{}, error) {
	switch registration.mode {
	case Eager:
		return c.resolveEager(registration)
	case Lazy:
		return c.resolveLazy(registration)
	case Transient:
		return c.resolveTransient(registration)
	default:
		return nil, fmt.Errorf("unknown registration mode for component: %s", registration.key)
	}
}

func (c *UnifiedContainer) resolveEager(registration *ComponentRegistration) (interface{}, error) {
	registration.mutex.RLock()
	defer registration.mutex.RUnlock()

	if registration.initialized {
		return registration.instance, nil
	}
	return nil, fmt.Errorf("eager component not properly initialized: %s", registration.key)
}

func (c *UnifiedContainer) resolveLazy(registration *ComponentRegistration) (interface{}, error) {
	registration.mutex.RLock()
	if registration.initialized {
		instance := registration.instance
		registration.mutex.RUnlock()
		return instance, nil
	}
	registration.mutex.RUnlock()

	registration.mutex.Lock()
	defer registration.mutex.Unlock()

	// Double-check pattern
	if registration.initialized {
		return registration.instance, nil
	}

	instance, err := c.callConstructor(registration.constructor)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lazy component '%s': %w", registration.key, err)
	}

	registration.instance = instance
	registration.initialized = true
	return instance, nil
}

func (c *UnifiedContainer) resolveTransient(registration *ComponentRegistration) (interface{}, error) {
	instance, err := c.callConstructor(registration.constructor)
	if err != nil {
		return nil, fmt.Errorf("failed to construct transient component '%s': %w", registration.key, err)
	}
	return instance, nil
}

var (
	contextType   = reflect.TypeOf((*context.Context)(nil)).Elem()
	containerType = reflect.TypeOf((*Container)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// validateConstructor accepts func() T, func() (T, error), and the same
// shapes taking a single context.Context or Container argument.
func validateConstructor(key string, constructor interface{}) error {
	if constructor == nil {
		return fmt.Errorf("invalid constructor for '%s': constructor is nil", key)
	}
	fnType := reflect.TypeOf(constructor)
	if fnType.Kind() != reflect.Func {
		return fmt.Errorf("invalid constructor for '%s': constructor must be a function, got %s", key, fnType)
	}

	switch fnType.NumIn() {
	case 0:
	case 1:
		in := fnType.In(0)
		if in != contextType && in != containerType {
			return fmt.Errorf("invalid constructor for '%s': parameter must be context.Context or di.Container, got %s", key, in)
		}
	default:
		return fmt.Errorf("invalid constructor for '%s': expected at most one parameter, got %d", key, fnType.NumIn())
	}

	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return fmt.Errorf("invalid constructor for '%s': second result must be error, got %s", key, fnType.Out(1))
		}
	default:
		return fmt.Errorf("invalid constructor for '%s': constructor must return either (instance) or (instance, error)", key)
	}
	return nil
}

func (c *UnifiedContainer) callConstructor(constructor interface{}) (interface{}, error) {
	fn := reflect.ValueOf(constructor)
	fnType := fn.Type()

	var args []reflect.Value
	if fnType.NumIn() == 1 {
		if fnType.In(0) == contextType {
			args = []reflect.Value{reflect.ValueOf(context.Background())}
		} else {
			// DI-aware constructor: func(Container) (Service, error)
			args = []reflect.Value{reflect.ValueOf(Container(c))}
		}
	}

	return c.handleConstructorResults(fn.Call(args))
}

func (c *UnifiedContainer) handleConstructorResults(results []reflect.Value) (interface{}, error) {
	switch len(results) {
	case 1:
		return results[0].Interface(), nil
	case 2:
		if errVal := results[1].Interface(); errVal != nil {
			return nil, errVal.(error)
		}
		return results[0].Interface(), nil
	default:
		return nil, fmt.Errorf("constructor must return either (instance) or (instance, error)")
	}
}

// Registrations returns info about all registered components for introspection.
func (c *UnifiedContainer) Registrations() []RegistrationInfo {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result := make([]RegistrationInfo, 0, len(c.components)+len(c.singletons))

	for key, reg := range c.components {
		reg.mutex.RLock()
		result = append(result, RegistrationInfo{
			Key:         key,
			Mode:        reg.mode,
			Initialized: reg.initialized,
		})
		reg.mutex.RUnlock()
	}

	for key := range c.singletons {
		result = append(result, RegistrationInfo{
			Key:         key,
			Mode:        Singleton,
			Initialized: true,
		})
	}

	return result
}

// Close closes every cached instance and singleton that implements
// interface{ Close() error }. Transient instances belong to their callers.
func (c *UnifiedContainer) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var errs []error
	for _, registration := range c.components {
		if registration.initialized && registration.instance != nil {
			if closer, ok := registration.instance.(interface{ Close() error }); ok {
				if err := closer.Close(); err != nil {
					errs = append(errs, fmt.Errorf("closing '%s': %w", registration.key, err))
				}
			}
		}
	}

	for key, singleton := range c.singletons {
		if closer, ok := singleton.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("closing '%s': %w", key, err))
			}
		}
	}

	return stderrors.Join(errs...)
}
