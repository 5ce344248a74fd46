// Package config persists user preferences under the profile directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const filename = "config.json"

// Config holds the persisted settings.
type Config struct {
	BaseURL  string `json:"base_url,omitempty"`
	Theme    string `json:"theme,omitempty"`
	WordWrap int    `json:"word_wrap,omitempty"`
}

func defaults() Config {
	return Config{
		Theme:    "dark",
		WordWrap: 100,
	}
}

// Load reads the config file from profileDir. Any problem, including a
// missing file, yields the defaults.
func Load(profileDir string) Config {
	cfg := defaults()
	data, err := os.ReadFile(filepath.Join(profileDir, filename))
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaults()
	}
	if cfg.Theme == "" {
		cfg.Theme = "dark"
	}
	if cfg.WordWrap <= 0 {
		cfg.WordWrap = 100
	}
	return cfg
}

// Save writes the config file into profileDir, creating it if needed.
func Save(profileDir string, cfg Config) error {
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(profileDir, filename), data, 0o644)
}
