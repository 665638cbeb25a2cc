package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config controls which backend the CLI builds and how it logs.
// Every field has a working default, so an empty config is valid.
type Config struct {
	Backend   string `yaml:"backend"`
	Shards    int    `yaml:"shards"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Defaults returns the configuration used when nothing is specified.
func Defaults() *Config {
	return &Config{
		Backend:   "memory",
		Shards:    16,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig loads configuration from a YAML file if path is provided,
// otherwise it starts from defaults. Environment variables override
// either source.
func LoadConfig(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			// If path was explicitly provided, a missing file is an error.
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case "memory", "sharded", "tree":
	default:
		return fmt.Errorf("invalid backend %q", c.Backend)
	}
	if c.Shards < 1 {
		return fmt.Errorf("shards must be at least 1, got %d", c.Shards)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// applyEnvOverrides allows environment variables to override config values.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PITARA_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("PITARA_SHARDS"); v != "" {
		shards, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PITARA_SHARDS value: %w", err)
		}
		cfg.Shards = shards
	}
	if v := os.Getenv("PITARA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PITARA_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return nil
}
