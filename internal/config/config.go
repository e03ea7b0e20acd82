// Package config provides configuration management for cipherlist.
// It uses Viper for loading configuration from files, environment variables,
// and command-line flags with sensible defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for cipherlist.
type Config struct {
	Resolve   ResolveConfig   `mapstructure:"resolve"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Reference ReferenceConfig `mapstructure:"reference"`
	Output    OutputConfig    `mapstructure:"output"`
	TUI       TUIConfig       `mapstructure:"tui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ResolveConfig holds configuration for expression resolution.
type ResolveConfig struct {
	// Expression used when a command is run without one
	DefaultExpression string `mapstructure:"default_expression"`
}

// ProvidersConfig holds configuration for provider profiles.
type ProvidersConfig struct {
	// Additional profile files (YAML) loaded next to the built-in ones
	ProfileFiles []string `mapstructure:"profile_files"`
}

// ReferenceConfig holds configuration for the reference OpenSSL binary.
type ReferenceConfig struct {
	// Path to the openssl binary
	Path string `mapstructure:"path"`
}

// OutputConfig holds configuration for command output.
type OutputConfig struct {
	// Default output format: table, json, yaml
	DefaultFormat string `mapstructure:"default_format"`
	// Pretty print JSON output
	PrettyJSON bool `mapstructure:"pretty_json"`
}

// TUIConfig holds configuration for the terminal UI.
type TUIConfig struct {
	// Color theme: dark, light
	Theme string `mapstructure:"theme"`
	// Show the full cross-reference pane by default
	ShowProviders bool `mapstructure:"show_providers"`
}

// LoggingConfig holds configuration for logging.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Log file (empty = stderr only)
	File string `mapstructure:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Resolve: ResolveConfig{
			DefaultExpression: "DEFAULT",
		},
		Providers: ProvidersConfig{
			ProfileFiles: []string{},
		},
		Reference: ReferenceConfig{
			Path: "openssl",
		},
		Output: OutputConfig{
			DefaultFormat: "table",
			PrettyJSON:    true,
		},
		TUI: TUIConfig{
			Theme:         "dark",
			ShowProviders: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// global holds the global configuration instance.
var global *Config

// Global returns the global configuration instance.
func Global() *Config {
	if global == nil {
		global = DefaultConfig()
	}
	return global
}

// SetGlobal sets the global configuration instance.
func SetGlobal(cfg *Config) {
	global = cfg
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	homeDir, _ := os.UserHomeDir()
	v.AddConfigPath(filepath.Join(homeDir, ".config", "cipherlist"))
	v.AddConfigPath("/etc/cipherlist")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CIPHERLIST")
	v.AutomaticEnv()

	// Missing config file is fine, defaults apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	expandPaths(cfg)
	SetGlobal(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	expandPaths(cfg)
	SetGlobal(cfg)

	return cfg, nil
}

// setDefaults sets default values in viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("resolve.default_expression", "DEFAULT")
	v.SetDefault("providers.profile_files", []string{})
	v.SetDefault("reference.path", "openssl")
	v.SetDefault("output.default_format", "table")
	v.SetDefault("output.pretty_json", true)
	v.SetDefault("tui.theme", "dark")
	v.SetDefault("tui.show_providers", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "cipherlist", "config.yaml")
}

// expandPaths expands ~ in every configured path.
func expandPaths(cfg *Config) {
	cfg.Reference.Path = expandPath(cfg.Reference.Path)
	if cfg.Logging.File != "" {
		cfg.Logging.File = expandPath(cfg.Logging.File)
	}
	for i, p := range cfg.Providers.ProfileFiles {
		cfg.Providers.ProfileFiles[i] = expandPath(p)
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
