/*
Package config manages the TOML config for wordsort.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/bastiangx/wordsort/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	List    ListConfig    `toml:"list"`
	Sampler SamplerConfig `toml:"sampler"`
	Server  ServerConfig  `toml:"server"`
	CLI     CliConfig     `toml:"cli"`
}

// ListConfig holds word list options.
type ListConfig struct {
	// Locale is a BCP 47 tag driving the collation order, e.g. "en", "ja", "de".
	Locale string `toml:"locale"`
}

// SamplerConfig holds random word source options.
type SamplerConfig struct {
	Source       string `toml:"source"`
	DefaultCount int    `toml:"default_count"`
	MaxCount     int    `toml:"max_count"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit  int `toml:"max_limit"`
	MinPrefix int `toml:"min_prefix"`
	MaxPrefix int `toml:"max_prefix"`
}

// CliConfig holds interactive session options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	LiveSuggest  bool `toml:"live_suggest"`
}

// Tag parses the configured locale, falling back to English when the tag is
// missing or malformed.
func (c ListConfig) Tag() language.Tag {
	if c.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		log.Warnf("Invalid locale %q: %v. Falling back to English.", c.Locale, err)
		return language.English
	}
	return tag
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		List: ListConfig{
			Locale: "en",
		},
		Sampler: SamplerConfig{
			Source:       filepath.Join("data", "words.txt"),
			DefaultCount: 10,
			MaxCount:     500,
		},
		Server: ServerConfig{
			MaxLimit:  64,
			MinPrefix: 1,
			MaxPrefix: 60,
		},
		CLI: CliConfig{
			DefaultLimit: 24,
			LiveSuggest:  true,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordsort
// 2. ~/Library/Application Support/wordsort (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordsort")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordsort")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordsort/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := utils.SaveTOMLFile(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Missing keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}
