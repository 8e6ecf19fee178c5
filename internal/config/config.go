// Package config handles topomesh configuration loading and management.
package config

// Config holds all topomesh settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Check   CheckConfig   `yaml:"check"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds mesh building settings.
type MeshConfig struct {
	Scale      float64 `yaml:"scale"`       // Model units between adjacent samples
	Workers    int     `yaml:"workers"`     // Row bands built concurrently
	BaseHeight float64 `yaml:"base_height"` // Flat base height when no base grid is given
}

// CheckConfig holds conformance check settings.
type CheckConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequireWatertight bool `yaml:"require_watertight"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Scale:      1,
			Workers:    1,
			BaseHeight: 0,
		},
		Check: CheckConfig{
			Enabled:           true,
			RequireWatertight: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
