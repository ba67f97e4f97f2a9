// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Taxonomy string `json:"taxonomy,omitempty"` // Path to a taxonomy JSON file; empty uses the built-in taxonomy
	Job      string `json:"job,omitempty"`      // Path to a job description text file
	JobURL   string `json:"job_url,omitempty"`  // URL to fetch a job posting from

	// Matching
	Workers  int `json:"workers,omitempty"`   // Concurrent scoring workers; 0 uses NumCPU
	TopN     int `json:"top_n,omitempty"`     // Result cap for job recommendations
	MaxVocab int `json:"max_vocab,omitempty"` // TF-IDF vocabulary cap; 0 uses the default

	// Counseling
	TimeframeMonths int `json:"timeframe_months,omitempty"` // Learning path horizon

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key; empty disables generative features
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.MaxVocab < 0 {
		return fmt.Errorf("config error: 'max_vocab' must be non-negative")
	}
	if c.TimeframeMonths < 0 {
		return fmt.Errorf("config error: 'timeframe_months' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.MaxVocab == 0 {
		result.MaxVocab = defaults.MaxVocab
	}
	if result.TimeframeMonths == 0 {
		result.TimeframeMonths = defaults.TimeframeMonths
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
