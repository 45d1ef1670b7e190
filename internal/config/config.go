// Package config loads taskmaster settings from an optional YAML file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvConfigPath = "TASKMASTER_CONFIG"
	EnvDBPath     = "TASKMASTER_DB"
	EnvExportDir  = "TASKMASTER_EXPORT_DIR"
	EnvLogLevel   = "TASKMASTER_LOG_LEVEL"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite file holding the saved gradebook.
	DBPath string `yaml:"db_path"`
	// ExportDir is where spreadsheet reports are written.
	ExportDir string `yaml:"export_dir"`
	// StorageKey names the key the class collection is saved under.
	StorageKey string `yaml:"storage_key"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns settings rooted at ~/.taskmaster. home may be empty
// when the home directory is unknown, in which case paths are relative.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:     filepath.Join(home, ".taskmaster", "taskmaster.db"),
		ExportDir:  ".",
		StorageKey: "teacherTaskMasterData",
		LogLevel:   "warn",
	}
}

// DefaultPath returns the config file location used when TASKMASTER_CONFIG
// is unset.
func DefaultPath(home string) string {
	return filepath.Join(home, ".taskmaster", "config.yaml")
}

// Load builds the effective configuration: defaults, then the YAML file (a
// missing file is fine), then environment overrides.
func Load() (Config, error) {
	// Without a home directory the defaults resolve against the working
	// directory.
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	cfg := DefaultConfig(home)

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = DefaultPath(home)
	}
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that required settings are present and well-formed.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.StorageKey == "" {
		return fmt.Errorf("storage_key is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel)
}
