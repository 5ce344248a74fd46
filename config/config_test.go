package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope"))
	if cfg.Theme != "dark" {
		t.Errorf("want default theme dark, got %q", cfg.Theme)
	}
	if cfg.WordWrap != 100 {
		t.Errorf("want default word wrap 100, got %d", cfg.WordWrap)
	}
	if cfg.BaseURL != "" {
		t.Errorf("base URL has no default, got %q", cfg.BaseURL)
	}
}

func TestLoad_CorruptFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(dir)
	if cfg.Theme != "dark" || cfg.WordWrap != 100 {
		t.Errorf("corrupt file should yield defaults, got %+v", cfg)
	}
}

func TestLoad_PartialFileFillsGaps(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"theme":"light"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(dir)
	if cfg.Theme != "light" {
		t.Errorf("want theme light, got %q", cfg.Theme)
	}
	if cfg.WordWrap != 100 {
		t.Errorf("missing word wrap should fall back to 100, got %d", cfg.WordWrap)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := Config{BaseURL: "http://example.test:5001", Theme: "catppuccin", WordWrap: 80}
	if err := Save(dir, in); err != nil {
		t.Fatal(err)
	}
	out := Load(dir)
	if out != in {
		t.Errorf("round trip changed config: in %+v, out %+v", in, out)
	}
}

func TestSave_CreatesProfileDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "profile")
	if err := Save(dir, defaults()); err != nil {
		t.Fatalf("Save should create the profile dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Errorf("config file missing after Save: %v", err)
	}
}
