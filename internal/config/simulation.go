package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config file path.
const EnvConfigPath = "WINTER_CONFIG"

// DefaultPath is the config file read when EnvConfigPath is unset.
const DefaultPath = "config/winterd.yaml"

// Cave parameters for the interval-gated policy.
type Cave struct {
	Every int `yaml:"every"`
}

// Tundra parameters for the probability-gated policy.
type Tundra struct {
	Chance      float64 `yaml:"chance"`
	HealthBonus int     `yaml:"health_bonus"`
}

// Meadow parameters for the cadence-and-probability-gated policy.
type Meadow struct {
	Every  int     `yaml:"every"`
	Chance float64 `yaml:"chance"`
}

// Swamp parameters for the proximity-and-probability-gated policy.
type Swamp struct {
	Chance          float64 `yaml:"chance"`
	PoisonDuration  int     `yaml:"poison_duration"`
	PoisonMagnitude int     `yaml:"poison_magnitude"`
}

// Spawn groups the per-terrain spawn policy parameters.
type Spawn struct {
	Cave   Cave   `yaml:"cave"`
	Tundra Tundra `yaml:"tundra"`
	Meadow Meadow `yaml:"meadow"`
	Swamp  Swamp  `yaml:"swamp"`
}

// DefaultSpawn returns the stock spawn parameters.
func DefaultSpawn() Spawn {
	return Spawn{
		Cave:   Cave{Every: 5},
		Tundra: Tundra{Chance: 0.05, HealthBonus: 10},
		Meadow: Meadow{Every: 10, Chance: 0.5},
		Swamp:  Swamp{Chance: 0.3, PoisonDuration: 5, PoisonMagnitude: 1},
	}
}

func (s Spawn) validate() error {
	var errs []error
	if s.Cave.Every <= 0 {
		errs = append(errs, fmt.Errorf("spawn.cave.every must be positive, got %d", s.Cave.Every))
	}
	if s.Meadow.Every <= 0 {
		errs = append(errs, fmt.Errorf("spawn.meadow.every must be positive, got %d", s.Meadow.Every))
	}
	for _, c := range []struct {
		name string
		p    float64
	}{
		{"spawn.tundra.chance", s.Tundra.Chance},
		{"spawn.meadow.chance", s.Meadow.Chance},
		{"spawn.swamp.chance", s.Swamp.Chance},
	} {
		if c.p < 0 || c.p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %g", c.name, c.p))
		}
	}
	if s.Tundra.HealthBonus < 0 {
		errs = append(errs, fmt.Errorf("spawn.tundra.health_bonus must not be negative, got %d", s.Tundra.HealthBonus))
	}
	if s.Swamp.PoisonDuration <= 0 || s.Swamp.PoisonMagnitude < 0 {
		errs = append(errs, fmt.Errorf("spawn.swamp poison must last at least one turn, got %d×%d",
			s.Swamp.PoisonDuration, s.Swamp.PoisonMagnitude))
	}
	return errors.Join(errs...)
}

// Simulation holds all configuration for the winterd runner.
type Simulation struct {
	LogLevel string `yaml:"log_level"`

	// Seed makes a run reproducible. Nil means a fresh random seed per run.
	Seed *int64 `yaml:"seed"`

	Turns        int           `yaml:"turns"`         // 0 runs until interrupted
	TurnInterval time.Duration `yaml:"turn_interval"` // 0 runs turns back to back
	ProfilePath  string        `yaml:"profile_path"`  // empty uses the embedded winter profile

	Spawn   Spawn   `yaml:"spawn"`
	Journal Journal `yaml:"journal"`
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel:     "info",
		Turns:        200,
		TurnInterval: 0,
		Spawn:        DefaultSpawn(),
		Journal:      DefaultJournal(),
	}
}

// SlogLevel parses LogLevel.
func (s Simulation) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Validate reports every invalid setting at once.
func (s Simulation) Validate() error {
	var errs []error
	if _, err := s.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if s.Turns < 0 {
		errs = append(errs, fmt.Errorf("turns must not be negative, got %d", s.Turns))
	}
	if s.TurnInterval < 0 {
		errs = append(errs, fmt.Errorf("turn_interval must not be negative, got %s", s.TurnInterval))
	}
	errs = append(errs, s.Spawn.validate(), s.Journal.validate())
	return errors.Join(errs...)
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
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Path returns the config path from EnvConfigPath, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}
