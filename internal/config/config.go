// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for tripwise.
type Config struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	CatalogFile string `mapstructure:"catalog_file" yaml:"catalog_file"`
	DefaultCity string `mapstructure:"default_city" yaml:"default_city"`
	Events      bool   `mapstructure:"events" yaml:"events"`
}

// Default returns the configuration written by `tripwise setup`.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		DefaultCity: string(trip.DefaultCity),
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("tripwise")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("catalog_file", "")
	v.SetDefault("default_city", string(trip.DefaultCity))
	v.SetDefault("events", false)

	// Setup ENV binding with TRIPWISE_ prefix
	v.SetEnvPrefix("TRIPWISE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool parsing
	for _, key := range []string{"log_level", "log_file", "catalog_file", "default_city", "events"} {
		if err := v.BindEnv(key, "TRIPWISE_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be represented by their Go types alone.
func (c *Config) Validate() error {
	if c.DefaultCity != "" {
		if _, err := trip.ParseCity(c.DefaultCity); err != nil {
			return fmt.Errorf("invalid default_city: %w", err)
		}
	}
	return nil
}

// City returns the configured default destination.
func (c *Config) City() trip.City {
	city, err := trip.ParseCity(c.DefaultCity)
	if err != nil {
		return trip.DefaultCity
	}
	return city
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/tripwise/tripwise.yml or $XDG_CONFIG_HOME/tripwise/tripwise.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripwise", "tripwise.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tripwise", "tripwise.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "tripwise.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
