package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the fastmarc CLI harness.
type Config struct {
	// Files are the MARC files a bare `bench` run measures.
	Files []string `yaml:"files"`
	// Repeats is the number of timed runs per measurement.
	Repeats int `yaml:"repeats"`
	// Strict applies strict terminator policy when decoding.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Repeats: 3,
	}
}

// LoadConfig loads configuration from the specified path, filling unset
// fields from the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Repeats < 1 {
		return nil, fmt.Errorf("repeats must be positive, got %d", config.Repeats)
	}

	return config, nil
}
