package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/runemist/runemist/internal/combat"
)

// Simulation holds all configuration for the simulation core.
type Simulation struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	AIDebug  bool   `yaml:"ai_debug"`

	// Cadences (milliseconds)
	AIUpdateIntervalMs  int `yaml:"ai_update_interval_ms"`
	AggroScanIntervalMs int `yaml:"aggro_scan_interval_ms"`
	MovementIntervalMs  int `yaml:"movement_interval_ms"`

	// Behavior tuning
	Behavior BehaviorConfig `yaml:"behavior"`

	// Combat formula tuning
	Combat combat.Params `yaml:"combat"`
}

// BehaviorConfig holds the mob behavior knobs.
type BehaviorConfig struct {
	IdleDurationSec    int     `yaml:"idle_duration_sec"`
	SpawnImmunityTicks int32   `yaml:"spawn_immunity_ticks"`
	AggroLevelFactor   float64 `yaml:"aggro_level_factor"`
	ThreatForgetChance int     `yaml:"threat_forget_chance"`
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel:            "info",
		AIDebug:             false,
		AIUpdateIntervalMs:  1000,
		AggroScanIntervalMs: 500,
		MovementIntervalMs:  100,
		Behavior: BehaviorConfig{
			IdleDurationSec:    10,
			SpawnImmunityTicks: 3,
			AggroLevelFactor:   2.0,
			ThreatForgetChance: 500,
		},
		Combat: combat.DefaultParams(),
	}
}

// LoadSimulation loads simulation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

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

	return cfg, nil
}
