// Package config loads the station simulator configuration: built-in
// defaults, an optional YAML file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/signalsfoundry/orbitron-station/internal/logging"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// maxSecurityCodeBytes is the longest input bcrypt will hash.
const maxSecurityCodeBytes = 72

// Config is the complete simulator configuration.
type Config struct {
	Station StationConfig `yaml:"station"`
	Logging LoggingConfig `yaml:"logging"`
	Tracing TracingConfig `yaml:"tracing"`
}

// StationConfig holds the values fixed when the station is built.
type StationConfig struct {
	SecurityCode string `yaml:"securityCode"`
	OxygenLevel  int    `yaml:"oxygenLevel"`
	// BcryptCost is the work factor used to hash the security code.
	BcryptCost int `yaml:"bcryptCost"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	AddSource  bool   `yaml:"addSource"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

// TracingConfig selects whether mission control queries are traced.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"serviceName"`
	SampleRatio float64 `yaml:"sampleRatio"`
}

// Default returns the configuration the simulator runs with when nothing is
// supplied.
func Default() *Config {
	return &Config{
		Station: StationConfig{
			SecurityCode: "OrbitronSecure",
			OxygenLevel:  80,
			BcryptCost:   bcrypt.DefaultCost,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "orbitron-station",
			SampleRatio: 1.0,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (if non-empty, or
// ORBITRON_CONFIG when path is empty) and environment overrides, then
// validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("ORBITRON_CONFIG")
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("load config %q: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if code := os.Getenv("ORBITRON_SECURITY_CODE"); code != "" {
		cfg.Station.SecurityCode = code
	}
	if raw := os.Getenv("ORBITRON_OXYGEN_LEVEL"); raw != "" {
		if level, err := strconv.Atoi(raw); err == nil {
			cfg.Station.OxygenLevel = level
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	if file := os.Getenv("LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}
	if raw := os.Getenv("ORBITRON_TRACING_ENABLED"); raw != "" {
		cfg.Tracing.Enabled = strings.EqualFold(raw, "true")
	}
}

// Validate checks the ambient settings. The oxygen level is deliberately left
// unchecked: out-of-range readings are reported by the life-support module.
func (c *Config) Validate() error {
	code := c.Station.SecurityCode
	if code == "" {
		return fmt.Errorf("%w: station.securityCode must not be empty", ErrInvalidConfig)
	}
	if len(code) > maxSecurityCodeBytes {
		return fmt.Errorf("%w: station.securityCode exceeds %d bytes", ErrInvalidConfig, maxSecurityCodeBytes)
	}
	if c.Station.BcryptCost < bcrypt.MinCost || c.Station.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: station.bcryptCost must be between %d and %d", ErrInvalidConfig, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("%w: tracing.sampleRatio must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}

// LoggerConfig converts the logging section into a logging.Config.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		AddSource:  c.Logging.AddSource,
		File:       c.Logging.File,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
	}
}
