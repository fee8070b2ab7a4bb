package config

// Logger holds the configuration for the logging subsystem.
type Logger struct {
	// Enabled toggles logging entirely. When false, a no-op logger is used.
	Enabled bool `yaml:"enabled"`

	// Environment selects the logger preset ("production" or "development").
	Environment string `yaml:"environment"`

	// Level is the minimum level that gets emitted ("debug", "info", "warn", "error").
	Level string `yaml:"level"`
}
