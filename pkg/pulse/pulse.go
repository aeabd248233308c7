package pulse

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bft-labs/pulse/internal/app"
	"github.com/bft-labs/pulse/internal/domain"
	"github.com/bft-labs/pulse/pkg/log"
	"github.com/bft-labs/pulse/pkg/task"
	"github.com/bft-labs/pulse/pkg/ticks"
)

// Pulse hosts the main loop task. Use New() to create an instance, then
// Start() to run the task in the background.
type Pulse struct {
	config    Config
	opts      options
	lifecycle *app.Lifecycle
	logger    log.Logger

	mu  sync.RWMutex
	cur *run
}

// run is the state of one Start..exit cycle.
type run struct {
	task     *task.Task
	cancel   context.CancelFunc
	done     chan struct{}
	plugins  []Plugin
	shutdown sync.Once
	err      error
}

// New creates a Pulse instance in StateStopped.
// Returns an error wrapping ErrInvalidConfig if the configuration is invalid.
func New(cfg Config, opts ...Option) (*Pulse, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Pulse{
		config:    cfg,
		opts:      o,
		lifecycle: app.NewLifecycle(o.logger, emitterAdapter{handler: o.eventHandler}),
		logger:    o.logger,
	}, nil
}

// Start initializes plugins and runs the task in a new goroutine.
// It returns immediately. The task runs until Stop is called, ctx ends, or
// the delay primitive faults (the instance then enters StateCrashed).
func (p *Pulse) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}
	// A run abandoned by a shutdown timeout still owns the task goroutine.
	if r := p.cur; r != nil {
		select {
		case <-r.done:
		default:
			return fmt.Errorf("%w: previous task has not exited", domain.ErrAlreadyRunning)
		}
	}
	if err := p.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	delayer := p.opts.delayer
	if delayer == nil {
		delayer = task.NewSleepDelayer(p.config.TickRate)
	}
	t, err := task.New(p.config.taskConfig(), p.logger, delayer)
	if err != nil {
		_ = p.lifecycle.TransitionTo(app.StateCrashed, err.Error())
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &run{task: t, cancel: cancel, done: make(chan struct{})}
	p.cur = r
	p.lifecycle.SetCancel(cancel)

	pluginCfg := PluginConfig{
		Tag:        p.config.Tag,
		ConfigPath: p.config.ConfigPath,
		Logger:     p.logger,
	}
	for _, pl := range p.opts.plugins {
		if err := pl.Initialize(runCtx, pluginCfg); err != nil {
			p.logger.Error("plugin initialization failed",
				log.String("plugin", pl.Name()),
				log.Err(err))
			cancel()
			p.shutdownPlugins(r)
			r.err = err
			close(r.done)
			_ = p.lifecycle.TransitionTo(app.StateCrashed, "plugin init failed: "+pl.Name())
			return fmt.Errorf("initialize plugin %s: %w", pl.Name(), err)
		}
		r.plugins = append(r.plugins, pl)
		p.logger.Info("plugin initialized", log.String("plugin", pl.Name()))
	}

	p.logger.Info("task starting",
		log.String("tag", p.config.Tag),
		log.Any("delay_ticks", uint32(t.DelayTicks())),
		log.Any("tick_rate_hz", uint32(p.config.TickRate)),
	)

	p.lifecycle.AddWorker()
	go p.loop(runCtx, r)

	return nil
}

func (p *Pulse) loop(ctx context.Context, r *run) {
	defer p.lifecycle.WorkerDone()
	defer close(r.done)

	if err := p.lifecycle.TransitionTo(app.StateRunning, "task running"); err != nil {
		// Stop() won the race during startup.
		return
	}

	err := r.task.Run(ctx)
	if errors.Is(err, task.ErrDelayFault) {
		r.err = err
		p.logger.Error("task fault", log.Err(err))
		p.shutdownPlugins(r)
		_ = p.lifecycle.TransitionTo(app.StateCrashed, err.Error())
		return
	}

	p.mu.RLock()
	current := p.cur == r
	p.mu.RUnlock()
	if !current {
		return
	}

	// The context ended without Stop(): the host is halting.
	if p.lifecycle.TransitionTo(app.StateStopping, "context done") == nil {
		p.shutdownPlugins(r)
		_ = p.lifecycle.TransitionTo(app.StateStopped, "context done")
	}
}

// Stop cancels the task and waits for it to exit, then shuts plugins down.
// Returns ErrNotRunning if the instance is not running and
// ErrShutdownTimeout if the task did not exit in time.
func (p *Pulse) Stop() error {
	p.mu.Lock()
	if !p.lifecycle.CanStop() {
		p.mu.Unlock()
		return domain.ErrNotRunning
	}
	if err := p.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		p.mu.Unlock()
		return err
	}
	r := p.cur
	p.mu.Unlock()

	p.lifecycle.Cancel()
	err := p.lifecycle.WaitWithTimeout(p.opts.shutdownTimeout)

	p.shutdownPlugins(r)

	if err != nil {
		_ = p.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
		return err
	}
	_ = p.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	return nil
}

// shutdownPlugins runs at most once per run, in reverse registration order.
func (p *Pulse) shutdownPlugins(r *run) {
	if r == nil {
		return
	}
	r.shutdown.Do(func() {
		ctx := context.Background()
		for i := len(r.plugins) - 1; i >= 0; i-- {
			pl := r.plugins[i]
			if err := pl.Shutdown(ctx); err != nil {
				p.logger.Error("plugin shutdown failed",
					log.String("plugin", pl.Name()),
					log.Err(err))
				continue
			}
			p.logger.Info("plugin shutdown complete", log.String("plugin", pl.Name()))
		}
	})
}

// Status returns the current lifecycle state.
func (p *Pulse) Status() State {
	return convertState(p.lifecycle.State())
}

// Iterations returns the records emitted by the current (or last) run.
func (p *Pulse) Iterations() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cur == nil {
		return 0
	}
	return p.cur.task.Iterations()
}

// Done returns a channel closed when the current run's task goroutine
// exits. Before the first Start it returns nil.
func (p *Pulse) Done() <-chan struct{} {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cur == nil {
		return nil
	}
	return p.cur.done
}

// Err returns the fault that crashed the last run, if any. It is only
// meaningful once Done is closed.
func (p *Pulse) Err() error {
	p.mu.RLock()
	r := p.cur
	p.mu.RUnlock()
	if r == nil {
		return nil
	}
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// validateModuleVersions checks that all module versions are compatible.
func validateModuleVersions() error {
	modules := map[string]struct {
		version    string
		minVersion string
	}{
		"task":  {task.Version, task.MinCompatibleVersion},
		"ticks": {ticks.Version, ticks.MinCompatibleVersion},
		"log":   {log.Version, log.MinCompatibleVersion},
	}

	for name, m := range modules {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}
	return nil
}

// isVersionCompatible reports whether version >= minVersion ("major.minor.patch").
func isVersionCompatible(version, minVersion string) bool {
	var v, m [3]int
	_, _ = fmt.Sscanf(version, "%d.%d.%d", &v[0], &v[1], &v[2])
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &m[0], &m[1], &m[2])

	for i := range v {
		if v[i] != m[i] {
			return v[i] > m[i]
		}
	}
	return true
}
