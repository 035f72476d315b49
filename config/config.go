// ABOUTME: Configuration for batch playlist path migration
// ABOUTME: Loads TOML config files and validates directories and prefix lists before any run

// Package config loads and validates the migration configuration.
// The configuration is read once at startup and never mutated; validation
// failures are fatal before any playlist is touched.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config describes one migration run: where playlists are read from and
// written to, and which base-path prefixes to substitute.
type Config struct {
	InputDir    string   `toml:"input_dir"`
	OutputDir   string   `toml:"output_dir"`
	OldPrefixes []string `toml:"old_prefixes"`
	NewPrefixes []string `toml:"new_prefixes"`
}

// Load reads a TOML configuration from path and normalizes its paths.
// Call Validate before using the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.normalize()

	return config, nil
}

// normalize cleans all configured paths so trailing separators never leak
// into prefix matching or destination construction
func (c *Config) normalize() {
	c.InputDir = cleanPath(c.InputDir)
	c.OutputDir = cleanPath(c.OutputDir)

	for i, p := range c.OldPrefixes {
		c.OldPrefixes[i] = cleanPath(p)
	}

	for i, p := range c.NewPrefixes {
		c.NewPrefixes[i] = cleanPath(p)
	}
}

func cleanPath(p string) string {
	if p == "" {
		return ""
	}

	return filepath.Clean(p)
}

// Validate checks that the configuration is complete and usable: all fields
// present, prefixes non-empty and unique, and the input, output and every
// new-prefix directory present on this machine. Any violation aborts the run
// before processing starts.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input_dir is required")
	}

	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}

	if err := requireDir(c.InputDir, "input_dir"); err != nil {
		return err
	}

	if err := requireDir(c.OutputDir, "output_dir"); err != nil {
		return err
	}

	if err := requirePrefixes(c.OldPrefixes, "old_prefixes"); err != nil {
		return err
	}

	if err := requirePrefixes(c.NewPrefixes, "new_prefixes"); err != nil {
		return err
	}

	// New prefixes are substitution targets, so they must exist here
	for _, p := range c.NewPrefixes {
		if err := requireDir(p, "new_prefixes entry"); err != nil {
			return err
		}
	}

	return nil
}

// requirePrefixes checks a prefix list for presence, empty entries and duplicates
func requirePrefixes(prefixes []string, field string) error {
	if len(prefixes) == 0 {
		return fmt.Errorf("%s must contain at least one path", field)
	}

	seen := make(map[string]bool, len(prefixes))

	for _, p := range prefixes {
		if p == "" {
			return fmt.Errorf("%s contains an empty path", field)
		}

		if seen[p] {
			return fmt.Errorf("%s contains duplicate path %q", field, p)
		}

		seen[p] = true
	}

	return nil
}

// requireDir checks that path exists and is a directory
func requireDir(path, field string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s %q does not exist on this machine: %w", field, path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s %q is not a directory", field, path)
	}

	return nil
}
