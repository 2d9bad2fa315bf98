// SPDX-License-Identifier: MIT

// Package config loads the pathsearch CLI configuration.
//
// Values are layered by viper: built-in defaults, then the optional config
// file, then PATHSEARCH_* environment variables (PATHSEARCH_LOG_LEVEL for
// log.level), then any flags bound by the caller. The result is checked with
// go-playground/validator before use.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathsearch/weight"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PATHSEARCH"

// ErrInvalid wraps every load or validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	Log     Log     `mapstructure:"log"`
	Workers int     `mapstructure:"workers" validate:"gte=1,lte=256"`
	Missing string  `mapstructure:"missing" validate:"missing_policy"`
	Metrics Metrics `mapstructure:"metrics"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Metrics controls the Prometheus registry. When enabled, commands write the
// gathered series to File in the text exposition format.
type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file" validate:"required_if=Enabled true"`
}

// MissingPolicy parses the configured unknown-edge policy.
func (c Config) MissingPolicy() weight.Missing {
	m, err := weight.ParseMissing(c.Missing)
	if err != nil {
		return weight.Impassable()
	}

	return m
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("missing_policy", func(fl validator.FieldLevel) bool {
		_, err := weight.ParseMissing(fl.Field().String())

		return err == nil
	})
}

// SetDefaults registers every key with its default so environment overrides
// are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("workers", 4)
	v.SetDefault("missing", "impassable")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.file", "")
}

// Load resolves the configuration from v, reading file first when non-empty.
// Flags should be bound to v before calling Load.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: reading %s: %w", ErrInvalid, file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}
