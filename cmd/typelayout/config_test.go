package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typelayout.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "indent_width: 2\ncolor: never\n")

	cfg := loadConfig(path)
	if cfg.IndentWidth != 2 {
		t.Errorf("indent_width: got %d, want 2", cfg.IndentWidth)
	}
	if cfg.Color != "never" {
		t.Errorf("color: got %q, want never", cfg.Color)
	}
	if cfg.indentString() != "  " {
		t.Errorf("indent string: got %q", cfg.indentString())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if cfg != defaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "indent_width: [not a number\n")
	cfg := loadConfig(path)
	if cfg != defaultConfig() {
		t.Errorf("malformed file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigBadValues(t *testing.T) {
	path := writeConfig(t, "indent_width: -4\ncolor: sometimes\n")
	cfg := loadConfig(path)
	if cfg.IndentWidth != 3 {
		t.Errorf("negative indent should reset to 3, got %d", cfg.IndentWidth)
	}
	if cfg.Color != "auto" {
		t.Errorf("unknown color mode should reset to auto, got %q", cfg.Color)
	}
}
