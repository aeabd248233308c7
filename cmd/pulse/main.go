package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/pulse/internal/cliconfig"
	"github.com/bft-labs/pulse/pkg/log"
	"github.com/bft-labs/pulse/pkg/pulse"
	"github.com/bft-labs/pulse/plugins/configwatcher"
)

const helpDescription = `
Run a single task that logs a fixed record and then yields for a fixed
interval, forever. The interval is converted to scheduler ticks at the
configured tick rate, the same way firmware main loops do.

The task never exits on its own. SIGINT or SIGTERM stops it gracefully; a
fault in the delay primitive exits with status 1.
`

var exampleUsage = strings.TrimSpace(`
  pulse
  pulse --tag sensor --message "still here" --interval 500ms
  pulse --config $HOME/.pulse/config.toml --log-format json
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// serve runs p until ctx ends (a signal) or the task exits on its own.
// A crashed task is returned as an error so main exits with status 1.
func serve(ctx context.Context, p *pulse.Pulse, logger log.Logger) error {
	if err := p.Start(context.Background()); err != nil {
		return fmt.Errorf("start pulse: %w", err)
	}

	select {
	case <-ctx.Done():
		logger.Info("received signal, stopping...")
	case <-p.Done():
	}

	if err := p.Err(); err != nil {
		return fmt.Errorf("task crashed: %w", err)
	}
	if err := p.Stop(); err != nil {
		return fmt.Errorf("stop pulse: %w", err)
	}
	return nil
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "pulse",
		Short:         "Log a fixed record on a fixed interval, forever",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			watchPath := ""
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
				watchPath = cfgFile
			} else if cfgPath != "" {
				return fmt.Errorf("config file %s not found", cfgPath)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cliconfig.Logger(os.Stderr, cfg)
			if err != nil {
				return err
			}
			logger.Debug("configuration", log.Any("config", cfg))

			p, err := pulse.New(cfg.Pulse(watchPath),
				pulse.WithLogger(logger),
				pulse.WithShutdownTimeout(cfg.ShutdownTimeout),
				configwatcher.WithConfigWatcher(configwatcher.DefaultConfig()),
			)
			if err != nil {
				return fmt.Errorf("create pulse: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, p, logger)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.pulse/config.toml)")
	root.Flags().StringVar(&cfg.Tag, "tag", cfg.Tag, "log source label")
	root.Flags().StringVar(&cfg.Message, "message", cfg.Message, "record emitted on every iteration")
	root.Flags().DurationVar(&cfg.Interval, "interval", cfg.Interval, "delay between records")
	root.Flags().IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "scheduler tick rate in Hz (1-1000)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level (debug, info, warn, error)")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log output format (console, json)")
	root.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "maximum time to wait for the task on shutdown")
	if err := root.Flags().MarkHidden("shutdown-timeout"); err != nil {
		fmt.Fprintf(os.Stderr, "pulse: %v\n", err)
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pulse: %v\n", err)
		os.Exit(1)
	}
}
