package cliconfig

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"PULSE_TAG":              "env-tag",
				"PULSE_MESSAGE":          "from env",
				"PULSE_INTERVAL":         "250ms",
				"PULSE_TICK_RATE":        "1000",
				"PULSE_LOG_LEVEL":        "debug",
				"PULSE_LOG_FORMAT":       "json",
				"PULSE_SHUTDOWN_TIMEOUT": "9s",
			},
			changed: map[string]bool{},
			expected: Config{
				Tag:             "env-tag",
				Message:         "from env",
				Interval:        250 * time.Millisecond,
				TickRate:        1000,
				LogLevel:        "debug",
				LogFormat:       "json",
				ShutdownTimeout: 9 * time.Second,
			},
		},
		{
			name:     "respects changed flags",
			envVars:  map[string]string{"PULSE_TAG": "env-tag"},
			changed:  map[string]bool{"tag": true},
			expected: Config{},
		},
		{
			name:     "zero tick rate ignored",
			envVars:  map[string]string{"PULSE_TICK_RATE": "0"},
			changed:  map[string]bool{},
			expected: Config{},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"PULSE_INTERVAL": "soon"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for negative tick rate",
			envVars: map[string]string{"PULSE_TICK_RATE": "-5"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"PULSE_TICK_RATE": "fast"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			var cfg Config
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
