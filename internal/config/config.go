// Package config loads the driver's small YAML configuration file,
// grounded in the teacher's existing YAML usage across its build and
// module manifests, via gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Quirks toggles the two source quirks spec.md §9 documents.
type Quirks struct {
	LTMapsToGTE bool `yaml:"lt_maps_to_gte"`
	NEMapsToMod bool `yaml:"ne_maps_to_mod"`
}

// Config is the on-disk shape of .tlcore.yaml.
type Config struct {
	Quirks Quirks `yaml:"quirks"`
	Trace  bool   `yaml:"trace"`
	Color  string `yaml:"color"` // auto | always | never
}

// Default returns the configuration used when no file is present: both
// source quirks preserved, no tracing, automatic color detection.
func Default() *Config {
	return &Config{
		Quirks: Quirks{LTMapsToGTE: true, NEMapsToMod: true},
		Trace:  false,
		Color:  "auto",
	}
}

// Load reads and parses path. A missing file is not an error: it
// returns Default() unchanged, since the absence of .tlcore.yaml is the
// common case for a one-off eval invocation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return cfg, nil
}
