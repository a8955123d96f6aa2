// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-matcher/internal/gaps"
	"github.com/jonathan/job-matcher/internal/matching"
)

// Defaults for the batch pipeline.
const (
	DefaultTopK         = 5
	DefaultConcurrency  = 4
	DefaultProcessedDir = "data/processed"
)

// Config is the CLI configuration, loadable from a JSON file. All fields are
// optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	SkillsConfig string `json:"skills_config,omitempty"` // Path to the canonical skill vocabulary JSON
	ProcessedDir string `json:"processed_dir,omitempty"` // Directory for persisted document records

	// Collaborators
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for the pgvector index
	S3Bucket    string `json:"s3_bucket,omitempty"`    // Bucket for mirroring result records

	// Batch behavior
	TopK        int  `json:"top_k,omitempty"`       // Candidate JDs retrieved per resume
	Concurrency int  `json:"concurrency,omitempty"` // Parallel (resume, JD) scoring workers
	Verbose     bool `json:"verbose,omitempty"`     // Development logging

	// Scoring parameters
	Matching matching.Config `json:"matching"`
	Gaps     gaps.Config     `json:"gaps"`
}

// Default returns a Config with all scoring and batch defaults filled in.
func Default() Config {
	return Config{
		ProcessedDir: DefaultProcessedDir,
		TopK:         DefaultTopK,
		Concurrency:  DefaultConcurrency,
		Matching:     matching.DefaultConfig(),
		Gaps:         gaps.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file layered over defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// Validate checks numeric ranges via struct tags plus the cross-field
// invariants the tags cannot express.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Gaps.WeakMatchThreshold < c.Matching.Threshold {
		return fmt.Errorf("config error: 'weak_match_threshold' (%.2f) must be at least 'threshold' (%.2f)",
			c.Gaps.WeakMatchThreshold, c.Matching.Threshold)
	}
	if c.Matching.ModerateFloor > c.Matching.StrongFloor {
		return fmt.Errorf("config error: 'moderate_floor' (%d) must not exceed 'strong_floor' (%d)",
			c.Matching.ModerateFloor, c.Matching.StrongFloor)
	}
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	return nil
}
