// Package config loads process configuration with Viper.
//
// Values are read from an optional config.yml, the environment and an
// optional .env file (godotenv), then defaulted and validated against struct
// tags.
//
//	var cfg config.Config
//	if err := config.Load("keyed-demo", &cfg); err != nil {
//	    return err
//	}
//
// Environment variables address nested keys by underscores, so
// LOGGING_LEVEL=warn sets logging.level.
package config
