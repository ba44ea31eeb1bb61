// Package config loads the widget demo configuration from TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config represents the demo configuration
type Config struct {
	Dropdown DropdownConfig `toml:"dropdown" yaml:"dropdown"`
	Modal    ModalConfig    `toml:"modal" yaml:"modal"`
	Tabs     TabsConfig     `toml:"tabs" yaml:"tabs"`
	Trace    TraceConfig    `toml:"trace" yaml:"trace"`
}

// DropdownConfig seeds the dropdown widget.
type DropdownConfig struct {
	ID              string   `toml:"id" yaml:"id"`
	Label           string   `toml:"label" yaml:"label"`
	Items           []string `toml:"items" yaml:"items"`
	DefaultOpen     bool     `toml:"default_open" yaml:"default_open"`
	DefaultSelected int      `toml:"default_selected" yaml:"default_selected"` // -1 for none
}

// ModalConfig seeds the modal widget and its adapter policy.
type ModalConfig struct {
	ID                  string `toml:"id" yaml:"id"`
	Title               string `toml:"title" yaml:"title"`
	Body                string `toml:"body" yaml:"body"`
	DefaultOpen         bool   `toml:"default_open" yaml:"default_open"`
	CloseOnEscape       bool   `toml:"close_on_escape" yaml:"close_on_escape"`
	CloseOnOutsideClick bool   `toml:"close_on_outside_click" yaml:"close_on_outside_click"`
}

// TabsConfig seeds the tab group.
type TabsConfig struct {
	ID           string   `toml:"id" yaml:"id"`
	Labels       []string `toml:"labels" yaml:"labels"`
	DefaultIndex int      `toml:"default_index" yaml:"default_index"`
	Orientation  string   `toml:"orientation" yaml:"orientation"` // "horizontal" or "vertical"
}

// TraceConfig controls transition tracing.
type TraceConfig struct {
	ServiceName string `toml:"service_name" yaml:"service_name"`
}

var (
	ErrNoTabs            = errors.New("tabs: at least one label is required")
	ErrTabIndex          = errors.New("tabs: default_index out of range")
	ErrOrientation       = errors.New("tabs: orientation must be horizontal or vertical")
	ErrDropdownSelection = errors.New("dropdown: default_selected out of range")
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Dropdown: DropdownConfig{
			Label:           "Fruit",
			Items:           []string{"Apple", "Banana", "Cherry", "Damson"},
			DefaultSelected: -1,
		},
		Modal: ModalConfig{
			Title:               "About",
			Body:                "Headless widgets driven by pure state transitions.",
			CloseOnEscape:       true,
			CloseOnOutsideClick: true,
		},
		Tabs: TabsConfig{
			Labels:      []string{"Overview", "Details", "History"},
			Orientation: "horizontal",
		},
		Trace: TraceConfig{
			ServiceName: "widgetdemo",
		},
	}
}

// Load reads the configuration at path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as TOML. Fields absent from the file keep
// their defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := unmarshal(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the preconditions the widget cores leave to the caller.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Tabs.Labels) == 0 {
		errs = append(errs, ErrNoTabs)
	} else if c.Tabs.DefaultIndex < 0 || c.Tabs.DefaultIndex >= len(c.Tabs.Labels) {
		errs = append(errs, ErrTabIndex)
	}
	switch c.Tabs.Orientation {
	case "", "horizontal", "vertical":
	default:
		errs = append(errs, ErrOrientation)
	}
	if c.Dropdown.DefaultSelected >= len(c.Dropdown.Items) {
		errs = append(errs, ErrDropdownSelection)
	}
	return errors.Join(errs...)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, cfg)
	}
	return toml.Unmarshal(data, cfg)
}

// Save writes the configuration to path in the format its extension names.
func (c *Config) Save(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
