// Package pulse provides an embeddable host for the main loop task.
//
// The task emits one informational record with a fixed tag and message,
// then yields for a fixed delay, forever. Pulse owns everything around it:
// configuration, the logging backend, the delay primitive, plugins and the
// lifecycle state machine.
//
// # Basic Usage
//
//	p, err := pulse.New(pulse.DefaultConfig(), pulse.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if err := p.Start(ctx); err != nil {
//	    return err
//	}
//	<-p.Done() // closed on Stop, ctx end, or a delay fault
//	if err := p.Err(); err != nil {
//	    // the delay primitive faulted; treat as fatal
//	}
//
// # Lifecycle States
//
// An instance is in one of [StateStopped], [StateStarting], [StateRunning],
// [StateStopping] or [StateCrashed]. A crashed instance can be started again.
//
// # Dependency Injection
//
// Tests replace the delay primitive with [WithDelayer] and capture records
// with [WithLogger].
package pulse
