package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/bft-labs/pulse/pkg/ticks"
)

const (
	// DefaultTag is the log source label.
	DefaultTag = "app"

	// DefaultMessage is the record emitted on every iteration.
	DefaultMessage = "Hello from pulse!"

	// DefaultDelay is the suspension between records.
	DefaultDelay = 1000 * time.Millisecond
)

// Config holds the immutable parameters of a task.
type Config struct {
	Tag     string
	Message string
	Delay   time.Duration
	Rate    ticks.Rate
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Tag:     DefaultTag,
		Message: DefaultMessage,
		Delay:   DefaultDelay,
		Rate:    ticks.DefaultRate,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Tag == "" {
		return errors.New("tag is required")
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %v", c.Delay)
	}
	if c.Delay > ticks.MaxDuration {
		return fmt.Errorf("delay %v exceeds maximum of %v", c.Delay, ticks.MaxDuration)
	}
	return c.Rate.Validate()
}

// DelayTicks is the delay expressed in scheduler ticks.
func (c Config) DelayTicks() ticks.Ticks {
	return c.Rate.FromDuration(c.Delay)
}
