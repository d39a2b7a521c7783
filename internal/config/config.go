// Package config provides Viper-based configuration loading for the report tool.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ReportConfig holds leaderboard settings.
type ReportConfig struct {
	// PlayerDir overrides plrfiles root resolution when non-empty.
	PlayerDir string `mapstructure:"player_dir"`
	// Extension is the player-file extension, including the dot.
	Extension string `mapstructure:"extension"`
	// Limit is the maximum number of rows per leaderboard table.
	Limit int `mapstructure:"limit"`
	// SummaryLimit is the number of top players the class summary covers.
	SummaryLimit int `mapstructure:"summary_limit"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level tool configuration.
type Config struct {
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateReport(c.Report); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateReport(r ReportConfig) error {
	var errs []string
	if !strings.HasPrefix(r.Extension, ".") {
		errs = append(errs, fmt.Sprintf("report.extension must start with a dot, got %q", r.Extension))
	}
	if r.Limit < 1 {
		errs = append(errs, fmt.Sprintf("report.limit must be >= 1, got %d", r.Limit))
	}
	if r.SummaryLimit < 1 {
		errs = append(errs, fmt.Sprintf("report.summary_limit must be >= 1, got %d", r.SummaryLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. A missing file is not an
// error: the tool runs with zero configuration, so defaults apply.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with MUDREPORT_ prefix
	v.SetEnvPrefix("MUDREPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.player_dir", "")
	v.SetDefault("report.extension", ".plr")
	v.SetDefault("report.limit", 100)
	v.SetDefault("report.summary_limit", 10)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
