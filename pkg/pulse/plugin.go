package pulse

import (
	"context"

	"github.com/bft-labs/pulse/pkg/log"
)

// PluginConfig is what a plugin learns about the instance it is attached to.
type PluginConfig struct {
	Tag        string
	ConfigPath string
	Logger     log.Logger
}

// Plugin extends a Pulse instance with work that runs next to the task.
// Plugins are initialized in registration order on Start and shut down in
// reverse order on Stop.
type Plugin interface {
	Name() string
	Initialize(ctx context.Context, cfg PluginConfig) error
	Shutdown(ctx context.Context) error
}

// BasePlugin provides a name and no-op lifecycle methods.
type BasePlugin struct {
	name string
}

// NewBasePlugin creates a BasePlugin with the given name.
func NewBasePlugin(name string) BasePlugin {
	return BasePlugin{name: name}
}

// Name returns the plugin name.
func (b BasePlugin) Name() string { return b.name }

// Initialize does nothing.
func (BasePlugin) Initialize(context.Context, PluginConfig) error { return nil }

// Shutdown does nothing.
func (BasePlugin) Shutdown(context.Context) error { return nil }
