package cliconfig

import "os"

// ApplyEnvConfig applies PULSE_* environment variables to cfg, skipping
// flags in changed. Returns an error if a value cannot be parsed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("tag", os.Getenv("PULSE_TAG"), &cfg.Tag)
	s.setString("message", os.Getenv("PULSE_MESSAGE"), &cfg.Message)
	s.setString("log-level", os.Getenv("PULSE_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("PULSE_LOG_FORMAT"), &cfg.LogFormat)

	if err := s.setIntFromString("tick-rate", os.Getenv("PULSE_TICK_RATE"), &cfg.TickRate); err != nil {
		return err
	}
	if err := s.setDuration("interval", os.Getenv("PULSE_INTERVAL"), &cfg.Interval); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", os.Getenv("PULSE_SHUTDOWN_TIMEOUT"), &cfg.ShutdownTimeout); err != nil {
		return err
	}
	return nil
}
