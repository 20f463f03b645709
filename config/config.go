// Package config defines the user-facing configuration file format.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Editor EditorConfig `yaml:"editor"`
	UI     UIConfig     `yaml:"ui"`
}

// EditorConfig configures the label overlay.
type EditorConfig struct {
	AutoSize    *bool  `yaml:"autosize,omitempty"`
	SelectText  *bool  `yaml:"select-text,omitempty"`
	HideLabel   *bool  `yaml:"hide-label,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
}

// UIConfig configures presentation of the diagram surface.
type UIConfig struct {
	SelectionColor string `yaml:"selection-color,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI: UIConfig{SelectionColor: "yellow"},
	}
}

// Load reads a config file and overlays it on the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
