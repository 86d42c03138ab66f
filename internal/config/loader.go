// apps/go-term/internal/config/loader.go
//
// Loading order, highest priority first:
//   1. environment variables (after godotenv has merged .env in main)
//   2. the YAML file named by CONFIG_PATH, or ./cordl.yaml when present
//   3. env-default struct tags
//
// Command-line flags are layered on top by the caller, which then runs
// Validate again.

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "cordl.yaml"

// Load builds and validates the configuration.
func Load() (*Config, error) {
	var cfg Config

	path, required := configPath()
	if err := read(path, required, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// configPath reports which file to read and whether it must exist.
// An explicit CONFIG_PATH that is missing is an error; the default is optional.
func configPath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultPath, false
}

func read(path string, required bool, cfg *Config) error {
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		// ReadConfig applies the environment over the file
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: %s: %w", path, err)
		}
	case required:
		return fmt.Errorf("config: %w", statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: environment: %w", err)
		}
	}
	return nil
}

// Usage writes the environment variables Load understands, with defaults.
func Usage(w io.Writer) {
	header := "Environment variables:"
	cleanenv.FUsage(w, &Config{}, &header)()
}
