// Package configwatcher reports edits to the pulse configuration file.
//
// Tag, message and interval are fixed for the life of the process, so an
// edit is never applied live. The plugin logs a warning that a restart is
// needed, once per burst of writes.
package configwatcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/pulse/pkg/log"
	"github.com/bft-labs/pulse/pkg/pulse"
)

// Plugin watches one configuration file.
type Plugin struct {
	mu sync.Mutex

	debounceDelay time.Duration

	path     string
	logger   log.Logger
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
	changes  int
}

// Config holds configuration options for the config watcher plugin.
type Config struct {
	// DebounceDelay is how long writes are coalesced before warning.
	// Default: 200 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 200 * time.Millisecond}
}

// New creates a new config watcher plugin.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 200 * time.Millisecond
	}
	return &Plugin{debounceDelay: cfg.DebounceDelay}
}

// WithConfigWatcher returns a pulse Option that enables config file watching.
func WithConfigWatcher(cfg Config) pulse.Option {
	return pulse.WithPlugin(New(cfg))
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "configwatcher"
}

// Initialize starts watching cfg.ConfigPath. Without a path it does nothing.
func (p *Plugin) Initialize(ctx context.Context, cfg pulse.PluginConfig) error {
	p.mu.Lock()
	p.path = cfg.ConfigPath
	p.logger = cfg.Logger
	if p.logger == nil {
		p.logger = log.NewNoopLogger()
	}
	p.mu.Unlock()

	if p.path == "" {
		p.logger.Debug("config watcher disabled: no config file")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors often replace the file by rename.
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		watcher.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)

	p.logger.Info("config watcher started", log.String("path", p.path))
	return nil
}

// Shutdown stops the watcher and any pending warning.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()

	p.mu.Lock()
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()
	return nil
}

// Changes returns how many restart warnings have been issued.
func (p *Plugin) Changes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.changes
}

func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	name := filepath.Base(p.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			p.scheduleWarning()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("config watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) scheduleWarning() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		p.mu.Lock()
		p.changes++
		p.mu.Unlock()
		p.logger.Warn("config file changed; restart to apply", log.String("path", p.path))
	})
}

var _ pulse.Plugin = (*Plugin)(nil)
