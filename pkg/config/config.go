// Package config loads the optional YAML configuration shared by the
// slicing tools.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no --config flag
// is given.
const EnvPath = "SLICE_CONFIG"

// Config holds user defaults and named filter presets.
type Config struct {
	// Delimiter is the default column delimiter when -d is not given.
	Delimiter string `yaml:"delimiter"`
	// Presets maps a name to the filter tokens it expands to.
	Presets map[string][]string `yaml:"presets"`
}

// Parse decodes a configuration document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	for name, tokens := range cfg.Presets {
		if len(tokens) == 0 {
			return nil, fmt.Errorf("preset %q has no filters", name)
		}
	}
	return cfg, nil
}

// Load reads the configuration at path. When path is empty the EnvPath
// variable is used; when both are empty an empty Config is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Expand returns the filter tokens of the named presets, in the order the
// names were given.
func (c *Config) Expand(names []string) ([]string, error) {
	var tokens []string
	for _, name := range names {
		preset, ok := c.Presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", name, c.PresetNames())
		}
		tokens = append(tokens, preset...)
	}
	return tokens, nil
}

// PresetNames returns the configured preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
