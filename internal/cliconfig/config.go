package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/pulse/pkg/pulse"
	"github.com/bft-labs/pulse/pkg/task"
	"github.com/bft-labs/pulse/pkg/ticks"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds CLI configuration for pulse.
type Config struct {
	Tag      string
	Message  string
	Interval time.Duration
	TickRate int

	LogLevel  string
	LogFormat string

	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Tag:             task.DefaultTag,
		Message:         task.DefaultMessage,
		Interval:        task.DefaultDelay,
		TickRate:        int(ticks.DefaultRate),
		LogLevel:        "info",
		LogFormat:       FormatConsole,
		ShutdownTimeout: pulse.DefaultShutdownTimeout,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Tag == "" {
		return fmt.Errorf("tag is required")
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}
	if c.Interval > ticks.MaxDuration {
		return fmt.Errorf("interval must not exceed %v", ticks.MaxDuration)
	}
	if c.TickRate <= 0 || c.TickRate > int(ticks.MaxRate) {
		return fmt.Errorf("tick-rate must be between 1 and %d", ticks.MaxRate)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("log-format must be %q or %q, got %q", FormatConsole, FormatJSON, c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}

// Pulse converts the CLI configuration to the library configuration.
func (c Config) Pulse(configPath string) pulse.Config {
	return pulse.Config{
		Tag:        c.Tag,
		Message:    c.Message,
		Interval:   c.Interval,
		TickRate:   ticks.Rate(c.TickRate),
		ConfigPath: configPath,
	}
}

// configSetter applies values only where the corresponding flag was not set
// on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if non-zero and flag not changed. Zero means
// unset; negative values are rejected.
func (s *configSetter) setInt(flag string, value int, dst *int) error {
	if value == 0 || s.changed[flag] {
		return nil
	}
	if value < 0 {
		return fmt.Errorf("%s must not be negative, got %d", flag, value)
	}
	*dst = value
	return nil
}

// setDuration parses and sets a duration if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses an environment value and applies it like setInt.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	return s.setInt(flag, i, dst)
}
