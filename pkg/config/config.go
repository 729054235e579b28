/*
Package config manages the TOML configuration for the typeahead demo and
widget defaults.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/typeahead/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Widget WidgetConfig `toml:"widget"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// WidgetConfig carries the controller thresholds.
type WidgetConfig struct {
	MinChars       int `toml:"min_chars"`
	DelayMs        int `toml:"delay_ms"`
	MaxSuggestions int `toml:"max_suggestions"`
	MaxVisible     int `toml:"max_visible"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path         string `toml:"path"`
	MaxWords     int    `toml:"max_words"`
	CacheEntries int    `toml:"cache_entries"`
}

// CliConfig holds line-mode defaults.
type CliConfig struct {
	DefaultLimit  int `toml:"default_limit"`
	DefaultMinLen int `toml:"default_min_len"`
	DefaultMaxLen int `toml:"default_max_len"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Widget: WidgetConfig{
			MinChars:       1,
			DelayMs:        300,
			MaxSuggestions: 24,
			MaxVisible:     8,
		},
		Dict: DictConfig{
			Path:         "",
			MaxWords:     50000,
			CacheEntries: 256,
		},
		CLI: CliConfig{
			DefaultLimit:  24,
			DefaultMinLen: 1,
			DefaultMaxLen: 24,
		},
	}
}

// GetConfigDir returns the config directory, falling back to the user home
// dot-config layout when the platform dir cannot be determined.
func GetConfigDir() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "typeahead"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "typeahead"), nil
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from a --config flag
// 2. Default path under the user config dir
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath
			}
			log.Warnf("failed to load config from %s: %v, trying default path", customConfigPath, err)
		} else {
			log.Warnf("config file not found at %s, trying default path", customConfigPath)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("failed to determine default config path: %v, using builtin defaults", err)
		return DefaultConfig(), ""
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("failed to load/create config at %s: %v, using builtin defaults", defaultPath, err)
		return DefaultConfig(), ""
	}
	return cfg, defaultPath
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return nil, err
	}
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default config file at: %s", configPath)
		return cfg, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Missing keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
