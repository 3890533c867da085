// Package config provides configuration management for phantomid.
//
// Config file locations (priority order):
//  1. $PHANTOMID_CONFIG
//  2. ./phantomid.yaml
//  3. $XDG_CONFIG_HOME/phantomid/config.yaml
//  4. ~/.config/phantomid/config.yaml
//  5. /etc/phantomid/config.yaml
//
// A missing file is not an error: defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"phantomid/internal/codec"
	"phantomid/internal/logger"
)

const currentVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidCount       = errors.New("batch.count must be > 0")
	ErrInvalidBatchSize   = errors.New("identity.batch_size must be > 0")
	ErrNoDemoTypes        = errors.New("demo.device_types must not be empty")
	ErrLogOutput          = errors.New("logging.output must be stderr or discard")
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		if err := cfg.Validate(); err != nil {
			return nil, "", fmt.Errorf("validate defaults: %w", err)
		}
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults. Logging falls back to
// LOG_LEVEL, DEBUG and LOG_OUTPUT; values from the file take precedence.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = currentVersion
	}
	env := logger.DefaultConfig()
	if c.Logging.Level == "" {
		c.Logging.Level = env.Level
	}
	if !c.Logging.Debug {
		c.Logging.Debug = env.Debug
	}
	if c.Logging.Output == "" {
		c.Logging.Output = env.Output
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if len(c.Demo.DeviceTypes) == 0 {
		c.Demo.DeviceTypes = []string{"windows10", "macos", "iphone", "android", "iot"}
	}
	if c.Batch.Count == 0 {
		c.Batch.Count = 1
	}
	if len(c.Batch.DeviceTypes) == 0 {
		c.Batch.DeviceTypes = []string{"linux"}
	}
	if c.Identity.BatchSize == 0 {
		c.Identity.BatchSize = 10
	}
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if c.Version != currentVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	switch c.Logging.Output {
	case logger.OutputStderr, logger.OutputDiscard:
	default:
		return fmt.Errorf("%w: got %q", ErrLogOutput, c.Logging.Output)
	}
	if _, err := codec.ExporterFor(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Batch.Count < 1 {
		return ErrInvalidCount
	}
	if c.Identity.BatchSize < 1 {
		return ErrInvalidBatchSize
	}
	if len(c.Demo.DeviceTypes) == 0 {
		return ErrNoDemoTypes
	}
	return nil
}

// Summary returns a one-line description for startup logs
func (c *Config) Summary() string {
	return fmt.Sprintf("format=%s count=%d demo=%v batch=%v",
		c.Output.Format, c.Batch.Count, c.Demo.DeviceTypes, c.Batch.DeviceTypes)
}
