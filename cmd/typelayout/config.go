package main

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// config holds the optional render settings read from a YAML file. Missing
// file or fields fall back to defaults; a config file is never required.
type config struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int `yaml:"indent_width"`

	// Color is "auto", "always", or "never".
	Color string `yaml:"color"`
}

func defaultConfig() config {
	return config{IndentWidth: 3, Color: "auto"}
}

// loadConfig reads path, or ~/.config/typelayout.yaml when path is empty.
// Unreadable or malformed files degrade to the defaults: render settings
// are not worth failing a query over.
func loadConfig(path string) config {
	cfg := defaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg
		}
		path = filepath.Join(home, ".config", "typelayout.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig()
	}
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = 3
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		cfg.Color = "auto"
	}
	return cfg
}

func (c config) indentString() string {
	return strings.Repeat(" ", c.IndentWidth)
}
