package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with string durations for TOML.
type FileConfig struct {
	Tag             string `toml:"tag"`
	Message         string `toml:"message"`
	Interval        string `toml:"interval"`
	TickRate        int    `toml:"tick_rate"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// LoadFileConfig reads and parses a TOML config file. Unknown keys are an error.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.pulse/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pulse", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies file values to cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("tag", fc.Tag, &cfg.Tag)
	s.setString("message", fc.Message, &cfg.Message)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)

	if err := s.setInt("tick-rate", fc.TickRate, &cfg.TickRate); err != nil {
		return err
	}
	if err := s.setDuration("interval", fc.Interval, &cfg.Interval); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", fc.ShutdownTimeout, &cfg.ShutdownTimeout); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
