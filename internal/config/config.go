// Package config loads wayfind settings with viper. Values come from
// defaults, then an optional config file (YAML, TOML or JSON), then
// WAYFIND_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/wayfind/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. WAYFIND_DEFAULTBUILDING or
// WAYFIND_SEARCH_STAIRSPENALTY.
const EnvPrefix = "WAYFIND"

// Config is the complete wayfind configuration.
type Config struct {
	// Buildings lists building files or directories to load. Empty means
	// the built-in fallback building.
	Buildings       []string      `json:"buildings" mapstructure:"buildings"`
	DefaultBuilding string        `json:"defaultBuilding" mapstructure:"defaultBuilding"`
	Search          SearchConfig  `json:"search" mapstructure:"search"`
	Logging         LoggingConfig `json:"logging" mapstructure:"logging"`
}

// SearchConfig tunes path search.
type SearchConfig struct {
	StairsPenalty int `json:"stairsPenalty" mapstructure:"stairsPenalty"`
	MaxExpansions int `json:"maxExpansions" mapstructure:"maxExpansions"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Buildings: []string{},
		Search: SearchConfig{
			StairsPenalty: 10,
			MaxExpansions: 0,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: string(logging.TextFormat),
		},
	}
}

// Load reads the configuration. With an empty path it looks for
// wayfind.{yaml,toml,json} in the working directory. A missing file is not
// an error: defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("buildings", def.Buildings)
	v.SetDefault("defaultBuilding", def.DefaultBuilding)
	v.SetDefault("search.stairsPenalty", def.Search.StairsPenalty)
	v.SetDefault("search.maxExpansions", def.Search.MaxExpansions)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wayfind")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Search.StairsPenalty < 0 {
		return &ConfigError{Field: "search.stairsPenalty", Message: "must not be negative"}
	}
	if c.Search.MaxExpansions < 0 {
		return &ConfigError{Field: "search.maxExpansions", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}
	if !logging.ValidFormat(logging.Format(c.Logging.Format)) {
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}
	for i, b := range c.Buildings {
		if strings.TrimSpace(b) == "" {
			return &ConfigError{Field: fmt.Sprintf("buildings[%d]", i), Message: "empty path"}
		}
	}
	return nil
}

// LoggerConfig converts the logging section for the logging package.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{Level: c.Logging.Level, Format: logging.Format(c.Logging.Format)}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
