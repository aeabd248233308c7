package ticks

import (
	"fmt"
	"time"
)

// Rate is the scheduler tick frequency in ticks per second (Hz).
type Rate uint32

// Ticks is a count of scheduler ticks.
type Ticks uint32

const (
	// DefaultRate matches the stock FreeRTOS tick rate used by ESP-IDF.
	DefaultRate Rate = 100

	// MaxRate is the highest supported tick rate (1 ms period).
	MaxRate Rate = 1000

	// MaxDuration is the longest duration FromDuration converts exactly;
	// longer ones are clamped to it (the millisecond count is a uint32).
	MaxDuration = time.Duration(^uint32(0)) * time.Millisecond
)

// Validate reports whether the rate is within 1..MaxRate.
func (r Rate) Validate() error {
	if r == 0 || r > MaxRate {
		return fmt.Errorf("tick rate %d Hz out of range (1-%d)", r, MaxRate)
	}
	return nil
}

// FromMillis converts milliseconds to ticks, truncating.
func (r Rate) FromMillis(ms uint32) Ticks {
	return Ticks(uint64(ms) * uint64(r) / 1000)
}

// FromDuration converts d to ticks. Sub-millisecond precision is dropped
// and negative durations convert to zero.
func (r Rate) FromDuration(d time.Duration) Ticks {
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms > int64(^uint32(0)) {
		ms = int64(^uint32(0))
	}
	return r.FromMillis(uint32(ms))
}

// Period returns the length of a single tick.
func (r Rate) Period() time.Duration {
	if r == 0 {
		return 0
	}
	return time.Second / time.Duration(r)
}

// Duration returns the wall-clock length of t ticks at this rate.
func (r Rate) Duration(t Ticks) time.Duration {
	if r == 0 {
		return 0
	}
	return time.Duration(t) * time.Second / time.Duration(r)
}
