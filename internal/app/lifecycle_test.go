package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/pulse/internal/domain"
	"github.com/bft-labs/pulse/pkg/log"
)

type stateChangeEvent struct {
	previous State
	current  State
	reason   string
}

// mockEmitter records state change events.
type mockEmitter struct {
	mu     sync.Mutex
	events []stateChangeEvent
}

func (m *mockEmitter) OnStateChange(previous, current State, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, stateChangeEvent{previous, current, reason})
}

func (m *mockEmitter) Events() []stateChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]stateChangeEvent{}, m.events...)
}

func TestNewLifecycle(t *testing.T) {
	l := NewLifecycle(nil, nil)
	if l.State() != StateStopped {
		t.Errorf("initial state = %v, want StateStopped", l.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStopped, "Stopped"},
		{StateStarting, "Starting"},
		{StateRunning, "Running"},
		{StateStopping, "Stopping"},
		{StateCrashed, "Crashed"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestLifecycle_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		to      State
		wantErr error
	}{
		{"stopped to starting", StateStopped, StateStarting, nil},
		{"starting to running", StateStarting, StateRunning, nil},
		{"starting to stopping", StateStarting, StateStopping, nil},
		{"starting to crashed", StateStarting, StateCrashed, nil},
		{"running to stopping", StateRunning, StateStopping, nil},
		{"running to crashed", StateRunning, StateCrashed, nil},
		{"stopping to stopped", StateStopping, StateStopped, nil},
		{"stopping to crashed", StateStopping, StateCrashed, nil},
		{"crashed to starting", StateCrashed, StateStarting, nil},

		{"stopped to running", StateStopped, StateRunning, domain.ErrNotRunning},
		{"stopped to stopping", StateStopped, StateStopping, domain.ErrNotRunning},
		{"starting to stopped", StateStarting, StateStopped, domain.ErrAlreadyRunning},
		{"running to starting", StateRunning, StateStarting, domain.ErrAlreadyRunning},
		{"running to stopped", StateRunning, StateStopped, domain.ErrAlreadyRunning},
		{"stopping to running", StateStopping, StateRunning, domain.ErrAlreadyRunning},
		{"crashed to running", StateCrashed, StateRunning, domain.ErrNotRunning},
		{"crashed to stopped", StateCrashed, StateStopped, domain.ErrNotRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle(log.NewNoopLogger(), nil)
			l.state = tt.from

			err := l.TransitionTo(tt.to, "test")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TransitionTo() error = %v, want %v", err, tt.wantErr)
			}

			want := tt.to
			if tt.wantErr != nil {
				want = tt.from
			}
			if l.State() != want {
				t.Errorf("state = %v, want %v", l.State(), want)
			}
		})
	}
}

func TestLifecycle_TransitionTo_EmitsEvents(t *testing.T) {
	emitter := &mockEmitter{}
	l := NewLifecycle(log.NewNoopLogger(), emitter)

	_ = l.TransitionTo(StateStarting, "start")
	_ = l.TransitionTo(StateRunning, "run")
	_ = l.TransitionTo(StateStarting, "rejected")

	events := emitter.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0] != (stateChangeEvent{StateStopped, StateStarting, "start"}) {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[1] != (stateChangeEvent{StateStarting, StateRunning, "run"}) {
		t.Errorf("event 1 = %+v", events[1])
	}
}

func TestLifecycle_CanStartCanStop(t *testing.T) {
	tests := []struct {
		state     State
		wantStart bool
		wantStop  bool
	}{
		{StateStopped, true, false},
		{StateStarting, false, true},
		{StateRunning, false, true},
		{StateStopping, false, false},
		{StateCrashed, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			l := NewLifecycle(nil, nil)
			l.state = tt.state

			if got := l.CanStart(); got != tt.wantStart {
				t.Errorf("CanStart() = %v, want %v", got, tt.wantStart)
			}
			if got := l.CanStop(); got != tt.wantStop {
				t.Errorf("CanStop() = %v, want %v", got, tt.wantStop)
			}
		})
	}
}

func TestLifecycle_Cancel(t *testing.T) {
	l := NewLifecycle(nil, nil)
	l.Cancel() // no cancel stored yet

	ctx, cancel := context.WithCancel(context.Background())
	l.SetCancel(cancel)
	l.Cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Error("context not canceled")
	}
}

func TestLifecycle_WaitWithTimeout_Success(t *testing.T) {
	l := NewLifecycle(nil, nil)
	l.AddWorker()

	go func() {
		time.Sleep(10 * time.Millisecond)
		l.WorkerDone()
	}()

	if err := l.WaitWithTimeout(time.Second); err != nil {
		t.Errorf("WaitWithTimeout() = %v, want nil", err)
	}
}

func TestLifecycle_WaitWithTimeout_Timeout(t *testing.T) {
	l := NewLifecycle(nil, nil)
	l.AddWorker()

	err := l.WaitWithTimeout(10 * time.Millisecond)
	if !errors.Is(err, domain.ErrShutdownTimeout) {
		t.Errorf("WaitWithTimeout() = %v, want ErrShutdownTimeout", err)
	}

	l.WorkerDone()
}

func TestLifecycle_Concurrency(t *testing.T) {
	l := NewLifecycle(nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = l.State()
				_ = l.CanStart()
				_ = l.CanStop()
			}
		}()
	}

	// Only one goroutine can win Stopped -> Starting.
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TransitionTo(StateStarting, "race") == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	if wins != 1 {
		t.Errorf("%d goroutines entered Starting, want 1", wins)
	}
}
