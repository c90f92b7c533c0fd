// Package config loads the optional configuration file of sha256sum.
//
// The file is given by the --config flag or the SHA256SUM_CONFIG environment
// variable. Every key is optional; flags given on the command line override
// the values read from the file.
//
//	backend: accelerated
//	workers: 8
//	output: results.txt
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kmolski/sha256"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "SHA256SUM_CONFIG"

// ErrInvalidConfig is returned when a config file cannot be parsed or holds
// values that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the contents of a config file.
type Config struct {
	// Backend is the name of the backend to hash with.
	Backend string `yaml:"backend"`

	// Workers is the number of files hashed at once. Zero means one per CPU.
	Workers int `yaml:"workers"`

	// Output is the file results are written to. Empty means stdout.
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Backend: sha256.Portable.String()}
}

// Load reads the file named by SHA256SUM_CONFIG, or returns Default when the
// variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path. Keys missing from the
// file keep their default values and unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := sha256.ParseBackend(c.Backend); err != nil {
		errs = append(errs, fmt.Errorf("backend: %w", err))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ParsedBackend returns the configured backend. It must only be called on a
// validated Config.
func (c *Config) ParsedBackend() sha256.Backend {
	b, _ := sha256.ParseBackend(c.Backend)
	return b
}
