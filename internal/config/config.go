// Package config holds the plandrift runtime configuration: harness
// trial settings, baseline seeding, the remote placeholder's identity,
// and logging. Values come from defaults, then an optional YAML file,
// then PLANDRIFT_* environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all plandrift configuration.
type Config struct {
	// Verification harness settings
	Verify VerifyConfig `yaml:"verify"`

	// Drift baseline settings
	Baseline BaselineConfig `yaml:"baseline"`

	// Remote placeholder identity
	Remote RemoteConfig `yaml:"remote"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// VerifyConfig configures the reproducibility harness.
type VerifyConfig struct {
	Trials      int `yaml:"trials"`
	Parallelism int `yaml:"parallelism"`
}

// BaselineConfig configures the drift baseline.
type BaselineConfig struct {
	// Seed fixes the baseline's randomness for repeatable demos.
	// 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// RemoteConfig names the placeholder integration target.
type RemoteConfig struct {
	Model  string `yaml:"model"`
	Region string `yaml:"region"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Verify: VerifyConfig{
			Trials:      10,
			Parallelism: 1,
		},
		Baseline: BaselineConfig{
			Seed: 0,
		},
		Remote: RemoteConfig{
			Model:  "bedrock-agent",
			Region: "us-east-1",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error; defaults are returned. Environment overrides apply last.
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

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies PLANDRIFT_* environment variable overrides.
// Unparseable numeric values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PLANDRIFT_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Verify.Trials = n
		}
	}
	if v := os.Getenv("PLANDRIFT_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Baseline.Seed = n
		}
	}
	if v := os.Getenv("PLANDRIFT_REMOTE_MODEL"); v != "" {
		c.Remote.Model = v
	}
	if v := os.Getenv("PLANDRIFT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Verify.Trials < 1 {
		return fmt.Errorf("verify.trials must be at least 1, got %d", c.Verify.Trials)
	}
	if c.Verify.Parallelism < 1 {
		return fmt.Errorf("verify.parallelism must be at least 1, got %d", c.Verify.Parallelism)
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}

	return nil
}
