// Package config loads slumber settings from the config file and the
// command-line
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/slumber/internal/models"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Moods         []models.Mood      `mapstructure:"moods"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Storage       StorageConfig      `mapstructure:"storage"`
		CLI           CLIConfig          `mapstructure:"-"`
		Server        ServerConfig       `mapstructure:"server"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// SettingsConfig holds sleep logging settings.
	SettingsConfig struct {
		QualityScorer  string `mapstructure:"quality_scorer"`
		Cmd            string `mapstructure:"cmd"`
		HistoryLimit   int    `mapstructure:"history_limit"`
		FixedQuality   int    `mapstructure:"fixed_quality"`
		TwentyFourHour bool   `mapstructure:"twenty_four_hour"`
	}

	// StorageConfig selects the store backend.
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
	}

	// ServerConfig holds settings for the local history page.
	ServerConfig struct {
		Port uint `mapstructure:"port"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// CLIConfig holds values that only come from command-line flags.
	CLIConfig struct {
		At    time.Time
		Mood  string
		Notes string
		Limit int
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	ScorerRandom = "random"
	ScorerFixed  = "fixed"

	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// DefaultMoods is the mood catalog used when the config file has none.
func DefaultMoods() []models.Mood {
	return []models.Mood{
		{Emoji: "😴", Label: "Sleepy"},
		{Emoji: "😊", Label: "Happy"},
		{Emoji: "😔", Label: "Tired"},
		{Emoji: "😡", Label: "Stressed"},
	}
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Limit returns the number of sessions shown by dashboard and history views.
func (c *Config) Limit() int {
	if c.CLI.Limit > 0 {
		return c.CLI.Limit
	}

	return c.Settings.HistoryLimit
}
