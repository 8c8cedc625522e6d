// Package config provides unified configuration loading for syndata.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/synheart/syndata/internal/biosignal"
)

// Config contains all syndata configuration settings.
type Config struct {
	// Generation contains defaults for the generate/session commands.
	Generation GenerationConfig `json:"generation" yaml:"generation"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Scenarios holds additional user-defined scenarios, available to
	// the CLI alongside the predefined table. They may not shadow
	// predefined emotion names.
	Scenarios []biosignal.Scenario `json:"scenarios,omitempty" yaml:"scenarios,omitempty"`
}

// GenerationConfig configures generation defaults; every field can be
// overridden per invocation with CLI flags.
type GenerationConfig struct {
	// DurationSeconds is the default duration per emotion.
	DurationSeconds int `json:"duration_seconds" yaml:"duration_seconds"`

	// TransitionSeconds is the default span of inter-scenario transitions.
	TransitionSeconds int `json:"transition_seconds" yaml:"transition_seconds"`

	// Output is the default output directory for sinks.
	Output string `json:"output" yaml:"output"`

	// Basename is the default base name for exported files.
	Basename string `json:"basename" yaml:"basename"`

	// Formats lists the sinks to export to (e.g. "sqlite", "arrow").
	Formats []string `json:"formats" yaml:"formats"`
}

// LoggingConfig configures syndata's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" additionally appends run records to <output>/runs.jsonl.
	Level string `json:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			DurationSeconds:   60,
			TransitionSeconds: biosignal.DefaultTransitionSeconds,
			Output:            "./generated_data",
			Basename:          "test_data",
			Formats:           []string{"sqlite", "arrow"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment
// variables. Order: defaults -> ~/.syndata/config.yaml -> environment.
func Load() (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".syndata", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			cfg = fileConfig
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Generation.Output = expandEnvVars(cfg.Generation.Output)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is valid, including every
// user-defined scenario.
func (c *Config) Validate() error {
	if c.Generation.DurationSeconds < 0 {
		return fmt.Errorf("duration_seconds must be non-negative, got %d", c.Generation.DurationSeconds)
	}
	if c.Generation.TransitionSeconds < 0 {
		return fmt.Errorf("transition_seconds must be non-negative, got %d", c.Generation.TransitionSeconds)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	seen := map[string]bool{}
	for _, s := range c.Scenarios {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("invalid scenario: %w", err)
		}
		if _, err := biosignal.ResolveScenario(s.Emotion); err == nil {
			return fmt.Errorf("scenario %q shadows a predefined emotion", s.Emotion)
		}
		if seen[s.Emotion] {
			return fmt.Errorf("duplicate scenario emotion %q", s.Emotion)
		}
		seen[s.Emotion] = true
	}

	return nil
}

// ResolveScenario looks up an emotion name first among the user-defined
// scenarios, then in the predefined table.
func (c *Config) ResolveScenario(emotion string) (biosignal.Scenario, error) {
	for _, s := range c.Scenarios {
		if s.Emotion == emotion {
			if s.SamplesPerSecond == 0 {
				s.SamplesPerSecond = 1.0
			}
			return s, nil
		}
	}
	return biosignal.ResolveScenario(emotion)
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SYNDATA_DURATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Generation.DurationSeconds = n
		}
	}
	if v := os.Getenv("SYNDATA_TRANSITION_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Generation.TransitionSeconds = n
		}
	}
	if v := os.Getenv("SYNDATA_OUTPUT"); v != "" {
		cfg.Generation.Output = v
	}
	if v := os.Getenv("SYNDATA_BASENAME"); v != "" {
		cfg.Generation.Basename = v
	}
	if v := os.Getenv("SYNDATA_FORMATS"); v != "" {
		cfg.Generation.Formats = strings.Split(v, ",")
	}
	if v := os.Getenv("SYNDATA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment
// variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
