package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment. They seed the CLI flag
// defaults, so an explicit flag still wins.
type Env struct {
	ConfigPath string `env:"AQUARIUM_CONFIG"`
	Seed       int64  `env:"AQUARIUM_SEED"       envDefault:"0"`
	OutputDir  string `env:"AQUARIUM_OUTPUT_DIR"`
	Sound      bool   `env:"AQUARIUM_SOUND"      envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the AQUARIUM_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
