// Package config loads the sign-up CLI configuration from an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signupform/pkg/i18n"
	"github.com/goliatone/go-signupform/pkg/signup"
)

// EnvBaseURL overrides the account API base URL.
const EnvBaseURL = "SIGNUP_BASE_URL"

// Config is the CLI configuration.
type Config struct {
	BaseURL     string        `yaml:"base_url"`
	Locale      string        `yaml:"locale"`
	AppName     string        `yaml:"app_name"`
	CatalogDir  string        `yaml:"catalog_dir"`
	Contract    string        `yaml:"contract"`
	OperationID string        `yaml:"operation_id"`
	Timeout     time.Duration `yaml:"timeout"`
	Log         Log           `yaml:"log"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration. Timeout zero means the create
// account call waits without a deadline.
func Default() Config {
	return Config{
		BaseURL:     "http://localhost:3333",
		Locale:      i18n.DefaultLocale,
		AppName:     signup.DefaultAppName,
		OperationID: signup.OperationID,
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load returns Default overlaid with the YAML file at path (when path is not
// empty) and then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment values read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	if value, ok := lookup(EnvBaseURL); ok && strings.TrimSpace(value) != "" {
		c.BaseURL = strings.TrimSpace(value)
	}
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("config: base_url is required")
	}
	if c.Timeout < 0 {
		return errors.New("config: timeout must not be negative")
	}
	return nil
}
