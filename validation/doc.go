// Package validation checks configuration structs against their `validate`
// tags and reports failures as errors.AppError values keyed by configuration
// path.
//
//	type Config struct {
//	    Name string `mapstructure:"name" validate:"required"`
//	}
//	err := validation.Validate(&cfg)
package validation
