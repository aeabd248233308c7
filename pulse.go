// Package pulse runs a single task that logs a fixed record and then sleeps
// for a fixed interval, forever.
//
// Example usage:
//
//	cfg := pulse.DefaultConfig()
//	cfg.Interval = 500 * time.Millisecond
//	if err := pulse.Run(ctx, cfg, zerolog.New(os.Stderr)); err != nil {
//	    log.Fatal(err)
//	}
package pulse

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bft-labs/pulse/pkg/log"
	host "github.com/bft-labs/pulse/pkg/pulse"
)

// Config holds the task configuration.
type Config = host.Config

// DefaultConfig returns the stock configuration: tag "app", a 1s interval at
// a 100 Hz tick rate.
func DefaultConfig() Config {
	return host.DefaultConfig()
}

// Run starts the task and blocks until ctx is canceled (returns nil) or the
// delay primitive faults (returns the fault).
func Run(ctx context.Context, cfg Config, logger zerolog.Logger) error {
	p, err := host.New(cfg, host.WithLogger(log.NewZerologAdapterWithLogger(logger)))
	if err != nil {
		return err
	}
	if err := p.Start(ctx); err != nil {
		return err
	}

	<-p.Done()

	if err := p.Err(); err != nil {
		return err
	}
	if err := p.Stop(); err != nil && !errors.Is(err, host.ErrNotRunning) {
		return err
	}
	return nil
}
