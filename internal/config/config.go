// Package config holds application settings and their default locations
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Version is the release version reported by the CLI and stamped into
// every log entry's plugin field.
const Version = "2.0.0"

// DebugEnv is the environment variable that enables debug diagnostics.
// It changes logging only, never matching behavior.
const DebugEnv = "TERMTRACK_DEBUG"

// Config holds all application configuration settings
type Config struct {
	// File locations
	LogDir     string `yaml:"log_dir"`
	IgnoreFile string `yaml:"ignore_file"`

	// Tracking settings
	Relay      bool `yaml:"relay"`
	DaysToKeep int  `yaml:"days_to_keep"`

	// Logging settings
	Debug bool `yaml:"debug"`
	Quiet bool `yaml:"-"`

	// Derived at startup, not persisted
	UseColors bool `yaml:"-"`
}

// New returns a Config populated from defaults, the optional YAML config
// file, and the environment, in that order. Flag values are bound on top of
// this by the CLI layer.
func New() *Config {
	c := &Config{
		LogDir:     DefaultLogDir(),
		IgnoreFile: DefaultIgnoreFile(),
		DaysToKeep: 30,
	}

	// An unreadable or malformed config file falls back to defaults; a
	// broken config must never break the shell hook.
	_ = c.loadFile(DefaultConfigFile())

	if DebugFromEnv() {
		c.Debug = true
	}

	c.UseColors = isatty.IsTerminal(os.Stderr.Fd())

	return c
}

// loadFile merges settings from a YAML file into the config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// DebugFromEnv reports whether the debug environment toggle is set.
func DebugFromEnv() bool {
	switch strings.ToLower(os.Getenv(DebugEnv)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// DefaultConfigFile returns the default config file location
// (~/.config/termtrack/config.yaml).
func DefaultConfigFile() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultIgnoreFile returns the default ignore pattern file location
// (~/.config/termtrack/ignore).
func DefaultIgnoreFile() string {
	return filepath.Join(configDir(), "ignore")
}

// DefaultLogDir returns the default activity log directory
// (~/.local/share/termtrack-logs).
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "termtrack-logs"
	}
	return filepath.Join(home, ".local", "share", "termtrack-logs")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "termtrack")
	}
	return filepath.Join(home, ".config", "termtrack")
}
