// Package config loads server configuration from an optional YAML file
// with environment overrides. Precedence: defaults < file < environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognized as overrides.
const (
	EnvAddr     = "GRAPHQL_BLOG_ADDR"
	EnvSeedFile = "GRAPHQL_BLOG_SEED_FILE"
	EnvVerbose  = "GRAPHQL_BLOG_VERBOSE"
)

// Config holds everything the serve command needs.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `yaml:"addr" validate:"required"`

	// SeedFile optionally points at a YAML seed document loaded at
	// startup. Empty means the embedded default seed.
	SeedFile string `yaml:"seed_file"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration: listen on :4000 with the
// embedded seed, matching the original server's port.
func Default() Config {
	return Config{Addr: ":4000"}
}

// Load builds a Config from defaults, an optional YAML file and the
// environment. Passing an empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration's structural rules.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("invalid config: field %s failed %q", f.Field(), f.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAddr); ok {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv(EnvSeedFile); ok {
		cfg.SeedFile = v
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}
