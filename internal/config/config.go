// Package config provides configuration loading and validation for the pathfinder CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/remote-pathfinder/internal/llm"
)

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 8080

// Config represents the service configuration that can be loaded from a JSON file
// or the environment. All fields are optional; missing values use defaults.
type Config struct {
	// Model
	APIKey      string  `json:"api_key,omitempty"`     // Gemini API key
	Provider    string  `json:"provider,omitempty"`    // "gemini" or "genai"
	Model       string  `json:"model,omitempty"`       // Model used for generation
	Tier        string  `json:"tier,omitempty"`        // lite, standard or advanced
	Temperature float32 `json:"temperature,omitempty"` // Sampling temperature, 0 keeps the provider default

	// Output checks
	LooseValidation bool `json:"loose_validation,omitempty"` // Only check the match count

	// Server
	Port            int    `json:"port,omitempty"`             // HTTP port
	AllowOrigin     string `json:"allow_origin,omitempty"`     // CORS Access-Control-Allow-Origin
	ShutdownTimeout string `json:"shutdown_timeout,omitempty"` // Graceful shutdown budget, e.g. "30s"
	Verbose         bool   `json:"verbose,omitempty"`          // Debug logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// A missing API key is not an error here: the server starts and reports
// the missing credential on each generate request.
func (c *Config) Validate() error {
	if _, err := llm.ParseProvider(c.Provider); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	switch llm.ModelTier(c.Tier) {
	case "", llm.TierLite, llm.TierStandard, llm.TierAdvanced:
	default:
		return fmt.Errorf("config error: unknown tier %q", c.Tier)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.ShutdownTimeout != "" {
		if _, err := parseDuration(c.ShutdownTimeout); err != nil {
			return fmt.Errorf("config error: 'shutdown_timeout': %w", err)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Tier == "" {
		result.Tier = defaults.Tier
	}
	if result.AllowOrigin == "" {
		result.AllowOrigin = defaults.AllowOrigin
	}
	if result.ShutdownTimeout == "" {
		result.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}

	// Bools cannot distinguish unset from false; true wins from either side.
	result.LooseValidation = result.LooseValidation || defaults.LooseValidation
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// LLMConfig builds the model configuration for the llm package.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if p, err := llm.ParseProvider(c.Provider); err == nil {
		cfg = cfg.WithProvider(p)
	}
	if c.Model != "" {
		cfg = cfg.WithModel(c.ModelTier(), c.Model)
	}
	cfg.Temperature = c.Temperature
	return cfg
}

// ModelTier returns the configured tier, defaulting to standard.
func (c *Config) ModelTier() llm.ModelTier {
	if c.Tier == "" {
		return llm.TierStandard
	}
	return llm.ModelTier(c.Tier)
}
