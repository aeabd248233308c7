package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/pulse/pkg/log"
	"github.com/bft-labs/pulse/pkg/pulse"
)

type captureLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *captureLogger) Debug(msg string, fields ...log.Field) {}
func (l *captureLogger) Info(msg string, fields ...log.Field)  {}
func (l *captureLogger) Error(msg string, fields ...log.Field) {}

func (l *captureLogger) Warn(msg string, fields ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *captureLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.warns...)
}

func TestPlugin_NoPathIsNoop(t *testing.T) {
	p := New(DefaultConfig())
	if err := p.Initialize(context.Background(), pulse.PluginConfig{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}

func TestPlugin_MissingDirectory(t *testing.T) {
	p := New(DefaultConfig())
	err := p.Initialize(context.Background(), pulse.PluginConfig{
		ConfigPath: filepath.Join(t.TempDir(), "missing", "config.toml"),
	})
	if err == nil {
		t.Error("Initialize() = nil, want error for missing directory")
	}
}

func TestPlugin_WarnsOncePerBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`tag = "app"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	logger := &captureLogger{}
	p := New(Config{DebounceDelay: 50 * time.Millisecond})
	if err := p.Initialize(context.Background(), pulse.PluginConfig{ConfigPath: path, Logger: logger}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer p.Shutdown(context.Background())

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write other: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(`tag = "edited"`), 0644); err != nil {
			t.Fatalf("rewrite config: %v", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for p.Changes() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no restart warning after config edit")
		}
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)

	if got := p.Changes(); got != 1 {
		t.Errorf("Changes() = %d, want 1 for a single burst", got)
	}
	if w := logger.Warnings(); len(w) != 1 || w[0] != "config file changed; restart to apply" {
		t.Errorf("warnings = %v", w)
	}
}

func TestPlugin_WithPulse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := pulse.DefaultConfig()
	cfg.ConfigPath = path
	p, err := pulse.New(cfg, WithConfigWatcher(DefaultConfig()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
