// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DataDir     string `env:"DATA_DIR" envDefault:"data"`
	SetsFile    string `env:"SETS_FILE"`
	ArtURL      string `env:"ART_URL"`
	ArtCacheDir string `env:"ART_CACHE_DIR"`
	Release     bool   `env:"RELEASE" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config and fills paths that default relative to DataDir.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SetsFile == "" {
		cfg.SetsFile = filepath.Join(cfg.DataDir, "sets.toml")
	}
	return cfg, nil
}
