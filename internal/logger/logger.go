// Package logger provides structured logging using zerolog
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level and destination of log output
type Config struct {
	Level      string `yaml:"level"`
	Debug      bool   `yaml:"debug,omitempty"`
	Output     string `yaml:"output"` // stderr or discard
	TimeFormat string `yaml:"time_format,omitempty"`
}

// Accepted values of Config.Output. Command output owns stdout.
const (
	OutputStderr  = "stderr"
	OutputDiscard = "discard"
)

var globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// DefaultConfig reads LOG_LEVEL, DEBUG and LOG_OUTPUT from the environment
func DefaultConfig() Config {
	return Config{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Debug:  getEnvBoolOrDefault("DEBUG", false),
		Output: getEnvOrDefault("LOG_OUTPUT", OutputStderr),
	}
}

// Init replaces the global logger, writing to os.Stderr
func Init(config Config) error {
	return InitWithWriter(config, os.Stderr)
}

// InitWithWriter replaces the global logger, writing to w unless the config
// discards output. An unparsable level is returned as an error and leaves the
// previous logger in place.
func InitWithWriter(config Config, w io.Writer) error {
	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(strings.ToLower(config.Level))
		if err != nil {
			return err
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	if config.Output == OutputDiscard {
		w = io.Discard
	}
	globalLogger = New(w, level)
	return nil
}

// New builds a timestamped logger writing to w at level
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// GetLogger returns the global logger
func GetLogger() zerolog.Logger {
	return globalLogger
}

// WithComponent returns a child logger tagged with component
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
