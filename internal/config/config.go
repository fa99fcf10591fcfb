// Package config loads the round-table server/CLI configuration,
// overlaying a YAML file with environment variable overrides, in the
// pattern of this corpus's chaos-utils configuration loader.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration (§9: "the configuration
// value of the enclosing call" the core's DefaultTimeLimitSeconds-style
// defaults flow in from).
type Config struct {
	Server ServerConfig `yaml:"server"`
	Solver SolverConfig `yaml:"solver"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP driver (cmd/roundtable-server).
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	AllowedOrigins string `yaml:"allowed_origins"`
}

// SolverConfig configures the scheduling pipeline's solver budget.
type SolverConfig struct {
	DefaultTimeLimitSeconds int `yaml:"default_time_limit_seconds"`
	NumSearchWorkers        int `yaml:"num_search_workers"`
}

// LogConfig configures applog.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file and no
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: "*",
		},
		Solver: SolverConfig{
			DefaultTimeLimitSeconds: 60,
			NumSearchWorkers:        8,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds a Config starting from DefaultConfig, overlaying path (if it
// exists) as YAML, then applying environment variable overrides. path=""
// is treated as "config.yaml"; a missing file is not an error — it simply
// leaves the defaults (and any env overrides) in place.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if yerr := yaml.Unmarshal(data, cfg); yerr != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, yerr)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROUNDTABLE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = v
	}
	if v := os.Getenv("ROUNDTABLE_DEFAULT_TIME_LIMIT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Solver.DefaultTimeLimitSeconds = n
		}
	}
	if v := os.Getenv("ROUNDTABLE_NUM_SEARCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Solver.NumSearchWorkers = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
