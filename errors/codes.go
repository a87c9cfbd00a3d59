package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Registration errors
const (
	// ErrCodeInvalidRegistration indicates a registration that can never be resolved.
	ErrCodeInvalidRegistration ErrorCode = "INVALID_REGISTRATION"
	// ErrCodeImplementationMismatch indicates an implementation that does not satisfy its service type.
	ErrCodeImplementationMismatch ErrorCode = "IMPLEMENTATION_MISMATCH"
	// ErrCodeUsedAfterBuild indicates a builder was modified after it was built.
	ErrCodeUsedAfterBuild ErrorCode = "USED_AFTER_BUILD"
)

// Resolution errors
const (
	// ErrCodeKeyNotRegistered indicates a lookup for a key that has no registration.
	ErrCodeKeyNotRegistered ErrorCode = "KEY_NOT_REGISTERED"
	// ErrCodeFactoryNotRegistered indicates no keyed factory was built for the requested identity.
	ErrCodeFactoryNotRegistered ErrorCode = "FACTORY_NOT_REGISTERED"
)

// Configuration and internal errors
const (
	// ErrCodeInvalidInput indicates invalid configuration or arguments.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string { return string(c) }
