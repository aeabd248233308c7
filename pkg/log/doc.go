// Package log is the logging seam between pulse and whatever backend
// receives its records.
//
// The task only ever emits informational records, but the Logger interface
// keeps all four levels so the runtime and plugins share one abstraction.
// A zerolog adapter and a no-op logger are provided:
//
//	logger, err := log.NewConsoleAdapter(os.Stderr, "info")
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log
