package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Env holds environment-variable overrides. They sit between command-line
// flags and the config file: flags win, then env, then file, then defaults.
type Env struct {
	Addr     string `env:"PANORAMA_ADDR"`
	CSVPath  string `env:"PANORAMA_CSV"`
	JSONPath string `env:"PANORAMA_JSON"`
	Output   string `env:"PANORAMA_OUTPUT"`
	Format   string `env:"PANORAMA_FORMAT"`
	Sample   bool   `env:"PANORAMA_SAMPLE"`
}

// FromEnv loads a .env file if one is present, then parses the PANORAMA_*
// variables.
func FromEnv() (*Env, error) {
	if err := godotenv.Load(".env"); err != nil {
		// A missing .env file is the normal case.
		slog.Debug("no .env file loaded", "error", err)
	}

	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// Merge folds env overrides into the file config. Env values win over the
// file, zero values leave the file value in place.
func (e *Env) Merge(cfg *Config) {
	if e.Addr != "" {
		cfg.Addr = e.Addr
	}
	if e.CSVPath != "" {
		cfg.CSVPath = e.CSVPath
	}
	if e.JSONPath != "" {
		cfg.JSONPath = e.JSONPath
	}
	if e.Output != "" {
		cfg.Output = e.Output
	}
	if e.Format != "" {
		cfg.Format = e.Format
	}
	if e.Sample {
		cfg.Sample = true
	}
}

// Defaults applied when neither flags, env, nor file set a value.
const (
	DefaultAddr   = ":8080"
	DefaultOutput = "report.html"
	DefaultFormat = "html"
)

// ApplyDefaults fills remaining zero values with the built-in defaults.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
}
