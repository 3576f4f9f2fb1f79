package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyMoods          = "moods"
	keyHistoryLimit   = "settings.history_limit"
	keyQualityScorer  = "settings.quality_scorer"
	keyFixedQuality   = "settings.fixed_quality"
	keyTwentyFourHour = "settings.twenty_four_hour"
	keySessionCmd     = "settings.cmd"
	keyNotifications  = "notifications.enabled"
	keyDarkTheme      = "display.dark_theme"
	keyStorageDriver  = "storage.driver"
	keyServerPort     = "server.port"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := setupViper(v); err != nil {
			return errViperSetup.Wrap(err)
		}

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) error {
	moods := make([]map[string]string, 0, len(DefaultMoods()))
	for _, m := range DefaultMoods() {
		moods = append(moods, map[string]string{
			"emoji": m.Emoji,
			"label": m.Label,
		})
	}

	v.SetDefault(keyMoods, moods)
	v.SetDefault(keyHistoryLimit, 7)
	v.SetDefault(keyQualityScorer, ScorerRandom)
	v.SetDefault(keyFixedQuality, 80)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotifications, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyStorageDriver, DriverBolt)
	v.SetDefault(keyServerPort, 1111)

	return nil
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
