package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sim holds configuration for the aurasim binary.
type Sim struct {
	LogLevel string `yaml:"log_level"`

	// Number of independent game objects the simulation drives.
	Objects int `yaml:"objects"`

	// Wall-clock seconds the simulation runs.
	DurationSeconds float64 `yaml:"duration_seconds"`

	// Seconds between scripted aura applications per object.
	CastIntervalSeconds float64 `yaml:"cast_interval_seconds"`
}

// DefaultSim returns Sim config with sensible defaults.
func DefaultSim() Sim {
	return Sim{
		LogLevel:            "info",
		Objects:             4,
		DurationSeconds:     5,
		CastIntervalSeconds: 0.5,
	}
}

// LoadSim loads simulation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSim(path string) (Sim, error) {
	cfg := DefaultSim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Objects <= 0 {
		return cfg, fmt.Errorf("config %s: objects must be positive, got %d", path, cfg.Objects)
	}
	if cfg.DurationSeconds <= 0 {
		return cfg, fmt.Errorf("config %s: duration_seconds must be positive, got %g", path, cfg.DurationSeconds)
	}
	if cfg.CastIntervalSeconds <= 0 {
		return cfg, fmt.Errorf("config %s: cast_interval_seconds must be positive, got %g", path, cfg.CastIntervalSeconds)
	}

	return cfg, nil
}
