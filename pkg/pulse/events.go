package pulse

import (
	"github.com/bft-labs/pulse/internal/app"
	"github.com/bft-labs/pulse/internal/domain"
)

// Errors returned by the public API.
var (
	ErrAlreadyRunning  = domain.ErrAlreadyRunning
	ErrNotRunning      = domain.ErrNotRunning
	ErrShutdownTimeout = domain.ErrShutdownTimeout
	ErrInvalidConfig   = domain.ErrInvalidConfig
)

// State is the lifecycle state of a Pulse instance.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	return app.State(s).String()
}

func convertState(s app.State) State {
	switch s {
	case app.StateStarting:
		return StateStarting
	case app.StateRunning:
		return StateRunning
	case app.StateStopping:
		return StateStopping
	case app.StateCrashed:
		return StateCrashed
	default:
		return StateStopped
	}
}

// StateChangeEvent describes one lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// EventHandler receives lifecycle notifications. Calls are synchronous;
// implementations should return quickly.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
}

// BaseEventHandler ignores every event. Embed it to implement only what you need.
type BaseEventHandler struct{}

// OnStateChange does nothing.
func (BaseEventHandler) OnStateChange(StateChangeEvent) {}

type emitterAdapter struct {
	handler EventHandler
}

func (e emitterAdapter) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}
