package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for sherlock.
type Config struct {
	LineCount LineCountConfig `yaml:"line_count"`
	Logging   LoggingConfig   `yaml:"logging"`
	Store     StoreConfig     `yaml:"store"`
}

// LineCountConfig holds defaults for the line-count command. Flags given on
// the command line take precedence.
type LineCountConfig struct {
	Top                int      `yaml:"top"`
	ExcludedFolders    []string `yaml:"excluded_folders"`
	ExcludePatterns    []string `yaml:"exclude_patterns"` // doublestar globs
	IncludeEmptyGroups bool     `yaml:"include_empty_groups"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// StoreConfig holds report history configuration.
type StoreConfig struct {
	Path string `yaml:"path"` // empty means ReportsDBPath()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LineCount: LineCountConfig{
			Top: 10,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for sherlock.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "sherlock.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".sherlock", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReportsDBPath returns where saved reports live: the configured path, or
// ~/.sherlock/reports.db, or .sherlock/reports.db when there is no home.
func (c *Config) ReportsDBPath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sherlock", "reports.db")
	}
	return filepath.Join(home, ".sherlock", "reports.db")
}
