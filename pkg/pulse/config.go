package pulse

import (
	"fmt"
	"time"

	"github.com/bft-labs/pulse/internal/app"
	"github.com/bft-labs/pulse/internal/domain"
	"github.com/bft-labs/pulse/pkg/task"
	"github.com/bft-labs/pulse/pkg/ticks"
)

// Config holds the configuration of a Pulse instance.
type Config struct {
	// Tag labels every record. Empty means "app".
	Tag string

	// Message is the fixed record text. DefaultConfig sets it to
	// "Hello from pulse!"; an empty message is logged as is.
	Message string

	// Interval is the delay between records, converted to ticks at
	// TickRate. Default: 1s. Zero only yields between records.
	Interval time.Duration

	// TickRate is the scheduler frequency in Hz. Zero means 100.
	TickRate ticks.Rate

	// ConfigPath is handed to plugins that watch the source of this
	// configuration. Optional.
	ConfigPath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Tag:      task.DefaultTag,
		Message:  task.DefaultMessage,
		Interval: task.DefaultDelay,
		TickRate: ticks.DefaultRate,
	}
}

// SetDefaults fills zero fields with defaults. Interval is left alone
// because zero is meaningful; Message likewise.
func (c *Config) SetDefaults() {
	if c.Tag == "" {
		c.Tag = task.DefaultTag
	}
	if c.TickRate == 0 {
		c.TickRate = ticks.DefaultRate
	}
}

// Validate checks the configuration. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.taskConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) taskConfig() task.Config {
	return task.Config{
		Tag:     c.Tag,
		Message: c.Message,
		Delay:   c.Interval,
		Rate:    c.TickRate,
	}
}

// DefaultShutdownTimeout bounds Stop unless overridden with WithShutdownTimeout.
const DefaultShutdownTimeout = app.DefaultShutdownTimeout
