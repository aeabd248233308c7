package pulse

import (
	"time"

	"github.com/bft-labs/pulse/pkg/log"
	"github.com/bft-labs/pulse/pkg/task"
)

// Option configures optional behavior of Pulse.
type Option func(*options)

type options struct {
	logger          log.Logger
	delayer         task.Delayer
	eventHandler    EventHandler
	plugins         []Plugin
	shutdownTimeout time.Duration
}

func defaultOptions() options {
	return options{
		logger:          log.NewNoopLogger(),
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// WithLogger sets the logging backend. Records from the task and
// lifecycle messages both go here. Default: no output.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDelayer replaces the delay primitive. Default: a timer-based
// delayer at the configured tick rate.
func WithDelayer(d task.Delayer) Option {
	return func(o *options) {
		o.delayer = d
	}
}

// WithEventHandler sets a handler for lifecycle events.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPlugin registers a plugin.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}

// WithShutdownTimeout bounds how long Stop waits for the task to exit.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}
