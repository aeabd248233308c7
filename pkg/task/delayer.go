package task

import (
	"context"
	"runtime"
	"time"

	"github.com/bft-labs/pulse/pkg/ticks"
)

// Delayer is the scheduler's delay primitive. Delay blocks the caller for at
// least n ticks, yielding the processor meanwhile. A zero delay yields once
// and returns. A non-nil error other than the context's is a fault.
type Delayer interface {
	Delay(ctx context.Context, n ticks.Ticks) error
}

// SleepDelayer implements Delayer with Go timers.
type SleepDelayer struct {
	rate ticks.Rate
}

// NewSleepDelayer creates a delayer that converts ticks at rate.
func NewSleepDelayer(rate ticks.Rate) *SleepDelayer {
	return &SleepDelayer{rate: rate}
}

// Delay sleeps for n ticks or until ctx is done.
func (s *SleepDelayer) Delay(ctx context.Context, n ticks.Ticks) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n == 0 {
		runtime.Gosched()
		return nil
	}

	timer := time.NewTimer(s.rate.Duration(n))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
