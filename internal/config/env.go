// Package config loads environment defaults that command-line flags override.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the SEMF_* environment defaults shared by all binaries.
type Env struct {
	Preset     string `env:"SEMF_PRESET"  envDefault:"fit1"`
	ConstsFile string `env:"SEMF_CONSTS"`
	Output     string `env:"SEMF_OUTPUT"  envDefault:"text"`
	Lang       string `env:"SEMF_LANG"    envDefault:"en"`
	Threads    int    `env:"SEMF_THREADS" envDefault:"0"`
	Trace      bool   `env:"SEMF_TRACE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the process environment defaults.
func Load() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// LoadFrom is Load over an explicit variable map (tests, embedding).
func LoadFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
