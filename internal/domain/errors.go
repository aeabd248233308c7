package domain

import "errors"

// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("pulse: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped instance.
	ErrNotRunning = errors.New("pulse: not running")

	// ErrShutdownTimeout is returned when the task does not exit in time.
	ErrShutdownTimeout = errors.New("pulse: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("pulse: invalid configuration")
)
