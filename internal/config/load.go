package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path, overlays API credentials from the
// environment (a .env file is honored when present) and validates the
// result. A missing config file is not an error: every setting except the
// API key has a default.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// run on defaults and environment only
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	_ = godotenv.Load()
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.Groq.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
