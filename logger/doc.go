// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The container and the
// keyed resolution layer log through named loggers obtained with Get, so an
// application can redirect them with Register.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("keyed")
//	log.Debug("registrations built", logger.Fields("keys", 2))
package logger
