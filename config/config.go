package config

import (
	"fmt"

	"github.com/kbukum/keyedi/logger"
	"github.com/kbukum/keyedi/validation"
)

// Config is the configuration of a process hosting a container with keyed
// registrations.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Metrics     MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Keys        KeysConfig    `yaml:"keys" mapstructure:"keys"`
}

// MetricsConfig controls container and lookup metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	MeterName string `yaml:"meter_name" mapstructure:"meter_name"`
}

// KeysConfig controls how registration keys are compared.
type KeysConfig struct {
	IgnoreCase bool `yaml:"ignore_case" mapstructure:"ignore_case"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks struct tags first, then the logging section.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// Load reads configuration for serviceName into cfg, applies defaults and
// validates the result. An empty name falls back to serviceName.
func Load(serviceName string, cfg *Config, opts ...LoaderOption) error {
	if err := LoadConfig(serviceName, cfg, opts...); err != nil {
		return err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.ApplyDefaults()
	return cfg.Validate()
}
