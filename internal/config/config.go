// Package config loads settings for the translit command.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvPath names the environment variable holding the default config file path.
const EnvPath = "TRANSLIT_CONFIG"

// Config holds command settings.
// Empty table paths select the embedded tables.
type Config struct {
	PhrasesPath string `yaml:"phrases_path" env:"TRANSLIT_PHRASES_PATH"`
	WordsPath   string `yaml:"words_path"   env:"TRANSLIT_WORDS_PATH"`
	LogLevel    string `yaml:"log_level"    env:"TRANSLIT_LOG_LEVEL"`
	Workers     int    `yaml:"workers"      env:"TRANSLIT_WORKERS"`
	TextField   string `yaml:"text_field"   env:"TRANSLIT_TEXT_FIELD"`
}

// Defaults returns the settings used for keys absent from both the file
// and the environment. Explicit zero values are kept and fail Validate.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		Workers:   4,
		TextField: "text",
	}
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if !validLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers: must be at least 1, got %d", c.Workers))
	}
	if c.TextField == "" {
		errs = append(errs, errors.New("text_field: must not be empty"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > Defaults. A variable that is set, even to the
// empty string, overrides the file.
// The file path is path, or the TRANSLIT_CONFIG env when path is empty.
// With no path at all, configuration is loaded from ENV + defaults only.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv(EnvPath)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
