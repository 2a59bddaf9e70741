package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for a prioria data directory.
type Config struct {
	Version  int    `yaml:"version"`
	Language string `yaml:"language"`           // "en" or "ja"
	Database string `yaml:"database,omitempty"` // override for the db file path
}

// Load reads and parses the config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to the given path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the starter config.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Language: "en",
	}
}

func (c *Config) validate() error {
	if c.Language == "" {
		c.Language = "en"
	}
	if c.Language != "en" && c.Language != "ja" {
		return fmt.Errorf("language must be 'en' or 'ja', got %q", c.Language)
	}
	return nil
}
