package cliconfig

import (
	"io"

	"github.com/bft-labs/pulse/pkg/log"
)

// Logger builds the process logger for the configured format and level.
func Logger(w io.Writer, cfg Config) (*log.ZerologAdapter, error) {
	if cfg.LogFormat == FormatJSON {
		return log.NewJSONAdapter(w, cfg.LogLevel)
	}
	return log.NewConsoleAdapter(w, cfg.LogLevel)
}
