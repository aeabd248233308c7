// Package task implements the main loop task: an unconditional repeat of
// (log, delay) steps.
//
// Each iteration emits one informational record carrying a fixed tag and a
// fixed message, then suspends the calling goroutine for a fixed number of
// scheduler ticks. The loop has no exit condition of its own. It returns only
// when the hosting context ends or when the delay primitive faults, which the
// host must treat as fatal.
//
//	t, err := task.New(task.DefaultConfig(), logger, task.NewSleepDelayer(ticks.DefaultRate))
//	if err != nil {
//	    return err
//	}
//	err = t.Run(ctx) // blocks
//
// # State Machine
//
// Two states alternate forever: LOGGING -> SLEEPING -> LOGGING. The initial
// state is LOGGING and there is no terminal state.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package task
