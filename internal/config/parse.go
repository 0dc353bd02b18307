package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks the configuration for errors.
func Validate(c *Config) error { return validate(c) }

// Load reads and validates a config file. A missing file is not an error:
// Default() is returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the configured config file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates .autocommit.yaml content.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if c.Watch == nil {
		c.Watch = append([]string(nil), DefaultWatch...)
	}
	c.applyDefaults()
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save validates and writes a config file to disk.
func Save(path string, c *Config) error {
	if err := validate(c); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func validate(c *Config) error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}
	for i, w := range c.Watch {
		if err := validatePath(w, fmt.Sprintf("watch[%d]", i)); err != nil {
			return err
		}
	}
	for i, p := range c.ScriptPaths {
		if err := validatePath(p, fmt.Sprintf("script_paths[%d]", i)); err != nil {
			return err
		}
	}
	if err := validatePath(c.OutputDir, "output_dir"); err != nil {
		return err
	}
	if err := validatePath(c.CounterFile, "counter_file"); err != nil {
		return err
	}
	if c.OutputPrefix == "" || strings.ContainsAny(c.OutputPrefix, `/\`) {
		return fmt.Errorf("config: output_prefix must be a plain file name prefix: %q", c.OutputPrefix)
	}
	if c.Remote == "" {
		return fmt.Errorf("config: remote is required")
	}
	if c.Branch == "" || strings.HasPrefix(c.Branch, "refs/") {
		return fmt.Errorf("config: branch must be a branch name only: %q", c.Branch)
	}
	if c.Run.Timeout < 0 {
		return fmt.Errorf("config: run.timeout must not be negative: %s", c.Run.Timeout)
	}
	for k := range c.Run.Env {
		if k == "" || strings.Contains(k, "=") {
			return fmt.Errorf("config: invalid run.env key %q", k)
		}
	}
	return nil
}

// validatePath ensures a path is relative and does not escape the repository.
func validatePath(p, label string) error {
	if p == "" {
		return fmt.Errorf("config: %s: path is required", label)
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: %s: path must not escape the repository (contains ..): %s", label, p)
	}
	return nil
}
