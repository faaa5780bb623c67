// Package config loads tusk's configuration from TOML files and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	userConfigDir   = ".tusk"
	userConfigName  = "tusk.toml"
	projectConfig   = ".tusk.toml"
	defaultDataName = "tasks.txt"
)

// Config holds the resolved settings.
type Config struct {
	// DataFile is the task save file. Its directory must already exist.
	DataFile string `toml:"data_file"`
	// NoColor disables lipgloss styling in the interactive session.
	NoColor bool `toml:"no_color"`
}

// Load resolves configuration in priority order:
// 1. Defaults
// 2. User config file (~/.tusk/tusk.toml)
// 3. Project config file (.tusk.toml in the current directory)
// 4. Environment variables (TUSK_DATA_FILE, TUSK_NO_COLOR)
// Front-end flags override the result after Load returns.
func Load() (*Config, error) {
	cfg := defaults()

	if path := userConfigFile(); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config %s: %w", path, err)
		}
	}

	if _, err := os.Stat(projectConfig); err == nil {
		if err := loadFile(cfg, projectConfig); err != nil {
			return nil, fmt.Errorf("loading project config %s: %w", projectConfig, err)
		}
	}

	loadEnv(cfg)
	return cfg, nil
}

// DataDir returns the directory holding tusk's own files (config, history,
// and the default task file).
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return userConfigDir
	}
	return filepath.Join(home, userConfigDir)
}

// EnsureDataDir creates DataDir if it is missing. Only tusk's own directory
// is auto-created; the directory of a user-configured data file is the
// user's responsibility.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0755)
}

func defaults() *Config {
	return &Config{
		DataFile: filepath.Join(DataDir(), defaultDataName),
	}
}

func userConfigFile() string {
	path := filepath.Join(DataDir(), userConfigName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("TUSK_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TUSK_NO_COLOR"); v != "" && v != "0" {
		cfg.NoColor = true
	}
}
