package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, overlays credentials from the
// environment and from dotenvPath (if present), and validates the result.
// A missing config file yields the defaults.
func Load(path, dotenvPath string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	dotenv, err := readDotEnv(dotenvPath)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// readDotEnv parses a .env file without touching the process environment.
func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read dotenv %s: %w", path, err)
	}
	return values, nil
}

// applyEnv fills credentials left empty in the file. Existing values win.
func (c *Config) applyEnv(lookup func(string) string) {
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = firstNonEmpty(lookup("GOOGLE_API_KEY"), lookup("GEMINI_API_KEY"))
	}
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = lookup("OPENAI_API_KEY")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
