package task

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bft-labs/pulse/pkg/log"
	"github.com/bft-labs/pulse/pkg/ticks"
)

// ErrDelayFault wraps any error the delay primitive reports that is not a
// context cancellation.
var ErrDelayFault = errors.New("delay primitive fault")

// State is the position of the task inside one iteration.
type State int32

const (
	StateLogging State = iota
	StateSleeping
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateLogging:
		return "LOGGING"
	case StateSleeping:
		return "SLEEPING"
	default:
		return "UNKNOWN"
	}
}

// Task is the main loop task.
type Task struct {
	tag     string
	message string
	delay   ticks.Ticks

	logger  log.Logger
	delayer Delayer

	state      atomic.Int32
	iterations atomic.Uint64
}

// New creates a task. The configuration is captured once and never changes.
func New(cfg Config, logger log.Logger, delayer Delayer) (*Task, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if delayer == nil {
		delayer = NewSleepDelayer(cfg.Rate)
	}

	return &Task{
		tag:     cfg.Tag,
		message: cfg.Message,
		delay:   cfg.DelayTicks(),
		logger:  logger,
		delayer: delayer,
	}, nil
}

// Run executes the loop until ctx ends or the delay primitive faults.
// A context ending returns ctx.Err(); a fault returns an error wrapping
// ErrDelayFault.
func (t *Task) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.state.Store(int32(StateLogging))
		t.logger.Info(t.message, log.String("tag", t.tag))
		t.iterations.Add(1)

		t.state.Store(int32(StateSleeping))
		if err := t.delayer.Delay(ctx, t.delay); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return ctxErr
			}
			return fmt.Errorf("%w: %w", ErrDelayFault, err)
		}
	}
}

// State returns the current loop state.
func (t *Task) State() State {
	return State(t.state.Load())
}

// Iterations returns how many records have been emitted.
func (t *Task) Iterations() uint64 {
	return t.iterations.Load()
}

// DelayTicks returns the per-iteration delay in ticks.
func (t *Task) DelayTicks() ticks.Ticks {
	return t.delay
}
