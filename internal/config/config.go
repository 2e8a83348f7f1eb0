// Package config provides the TOML pipeline configuration and its paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all tunable settings. Flags override config values.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Plot     PlotConfig     `toml:"plot"`
}

// PipelineConfig maps enrichment settings.
type PipelineConfig struct {
	// SessionGapMinutes is the inactivity threshold splitting sessions.
	SessionGapMinutes int `toml:"session-gap-minutes"`
	// Lenient skips malformed raw records instead of aborting.
	Lenient bool `toml:"lenient"`
}

// PlotConfig maps terminal plot settings.
type PlotConfig struct {
	Bins      int `toml:"bins"`
	KDEPoints int `toml:"kde-points"`
	Height    int `toml:"height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pipeline: PipelineConfig{SessionGapMinutes: 30},
		Plot:     PlotConfig{Bins: 20, KDEPoints: 1000, Height: 10},
	}
}

// Load reads a TOML config from path on top of the defaults. A missing
// file is not an error; an empty path means defaults only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// SessionGap returns the configured gap as a duration.
func (c Config) SessionGap() time.Duration {
	return time.Duration(c.Pipeline.SessionGapMinutes) * time.Minute
}

// DefaultPath returns the default TOML config path.
func DefaultPath() string {
	return filepath.Join(configHome(), "geoquiz", "config.toml")
}

func configHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}
