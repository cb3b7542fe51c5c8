// Package config loads scout client configuration from ~/.scout/config.yaml
// with environment variable overrides on top of defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all scout configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Export ExportConfig `yaml:"export"`
}

// APIConfig configures the connection to the PharmaScout service.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout for ordinary calls (profile, reports, auth).
	Timeout string `yaml:"timeout"`
	// EvaluateTimeout for the evaluate call, which runs the full agent
	// pipeline server-side and is much slower.
	EvaluateTimeout string `yaml:"evaluate_timeout"`
}

// ExportConfig configures document export.
type ExportConfig struct {
	// Dir is where exported report documents are written. Empty means the
	// current working directory.
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:         "http://localhost:8000",
			Timeout:         "15s",
			EvaluateTimeout: "180s",
		},
	}
}

// DefaultPath returns the per-user config file path.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scout", "config.yaml")
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("SCOUT_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if d := os.Getenv("SCOUT_API_TIMEOUT"); d != "" {
		c.API.Timeout = d
	}
	if dir := os.Getenv("SCOUT_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
}

// ParsedTimeout returns the ordinary-call timeout as a duration.
func (c *APIConfig) ParsedTimeout() time.Duration {
	return parseDuration(c.Timeout, 15*time.Second)
}

// ParsedEvaluateTimeout returns the evaluate-call timeout as a duration.
func (c *APIConfig) ParsedEvaluateTimeout() time.Duration {
	return parseDuration(c.EvaluateTimeout, 180*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
