// Package config loads project settings for the swan command from
// swan.yaml or swan.toml in the project directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds project configuration. All fields are optional; command
// line flags override file values.
type Config struct {
	// Entry overrides the entry page when checking fragments that have
	// no app declaration of their own. Empty means use the source's own
	// app entry.
	Entry string `yaml:"entry" toml:"entry"`

	// Strict enables the page-reachability check by default.
	Strict bool `yaml:"strict" toml:"strict"`

	// Format selects the default AST output format: "json" or "yaml".
	Format string `yaml:"format" toml:"format"`
}

// Candidate file names, tried in order. YAML wins when both exist.
var configFiles = []string{"swan.yaml", "swan.yml", "swan.toml"}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Format: "json"}
}

// Load reads project configuration from the given directory, trying
// swan.yaml, swan.yml, then swan.toml. A missing file is not an error;
// defaults are returned.
func Load(dir string) (*Config, error) {
	for _, name := range configFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return parse(name, data)
	}
	return Default(), nil
}

func parse(name string, data []byte) (*Config, error) {
	cfg := Default()
	var err error
	if filepath.Ext(name) == ".toml" {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if err := cfg.validate(name); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate(name string) error {
	switch c.Format {
	case "", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("%s: unknown format %q (want json or yaml)", name, c.Format)
	}
}
