// Package config loads process configuration from the environment and
// the game-balance tunables from an optional YAML file. The balance
// numbers (house edge, victory threshold and friends) are deliberately
// configuration, not code: defaults are compiled in and a tunables file
// overrides them.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds process-level settings read from the environment.
type Config struct {
	SavePath     string `env:"DRAINVAULT_SAVE" envDefault:"session.json"`
	TunablesPath string `env:"DRAINVAULT_CONFIG"`
	LogLevel     string `env:"DRAINVAULT_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SlogLevel maps the configured log level name to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid DRAINVAULT_LOG_LEVEL %q", c.LogLevel)
	}
}

// Tunables are the game-balance constants.
type Tunables struct {
	HouseEdge        float64 `yaml:"house_edge"`
	VictoryThreshold int64   `yaml:"victory_threshold"`
	BaseJokers       int     `yaml:"base_jokers"`
	MissionInterval  int     `yaml:"mission_interval"`
	StartingBalance  int64   `yaml:"starting_balance"`
	BaseBet          int64   `yaml:"base_bet"`
}

// DefaultTunables returns the compiled-in balance numbers.
func DefaultTunables() Tunables {
	return Tunables{
		HouseEdge:        0.06,
		VictoryThreshold: 100_000_000,
		BaseJokers:       2,
		MissionInterval:  15,
		StartingBalance:  5000,
		BaseBet:          200,
	}
}

// LoadTunables returns the defaults overlaid with the YAML file at
// TunablesPath, when one is configured.
func (c Config) LoadTunables() (Tunables, error) {
	t := DefaultTunables()
	if c.TunablesPath == "" {
		return t, nil
	}

	data, err := os.ReadFile(c.TunablesPath)
	if err != nil {
		return Tunables{}, fmt.Errorf("read tunables: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("parse tunables: %w", err)
	}
	if err := t.validate(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}

func (t Tunables) validate() error {
	if t.HouseEdge < 0 || t.HouseEdge >= 1 {
		return fmt.Errorf("house_edge %v out of range [0, 1)", t.HouseEdge)
	}
	if t.VictoryThreshold <= 0 {
		return fmt.Errorf("victory_threshold must be positive, got %d", t.VictoryThreshold)
	}
	if t.BaseJokers < 0 {
		return fmt.Errorf("base_jokers must be 0 or greater, got %d", t.BaseJokers)
	}
	if t.MissionInterval <= 0 {
		return fmt.Errorf("mission_interval must be positive, got %d", t.MissionInterval)
	}
	if t.StartingBalance <= 0 || t.BaseBet <= 0 {
		return fmt.Errorf("starting_balance and base_bet must be positive")
	}
	return nil
}
