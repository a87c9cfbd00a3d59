// Package errors provides the structured error type shared by the container
// and the keyed resolution layer. Errors carry a machine-readable code, a
// human-readable message, free-form details and an optional cause.
package errors
