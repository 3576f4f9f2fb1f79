package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/slumber/internal/config"
	"github.com/ayoisaiah/slumber/internal/models"
)

type TestCase struct {
	Want     *config.Config
	Name     string
	Contents string
	Err      bool
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Moods: config.DefaultMoods(),
		Settings: config.SettingsConfig{
			QualityScorer:  config.ScorerRandom,
			Cmd:            "",
			HistoryLimit:   7,
			FixedQuality:   80,
			TwentyFourHour: false,
		},
		Storage: config.StorageConfig{
			Driver: config.DriverBolt,
		},
		Server: config.ServerConfig{
			Port: 1111,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err, "default config should be written")

	assert.Contains(t, string(b), "history_limit: 7")
	assert.Contains(t, string(b), "quality_scorer: random")
	assert.Contains(t, string(b), "label: Stressed")

	// a second load reads the file that was just written
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

var readTestCases = []TestCase{
	{
		Name: "read a modified config file",
		Contents: `moods:
  - emoji: "🥱"
    label: Drowsy
  - emoji: "🤩"
    label: Rested
settings:
  history_limit: 14
  quality_scorer: fixed
  fixed_quality: 90
  twenty_four_hour: true
  cmd: "echo saved"
notifications:
  enabled: false
storage:
  driver: sqlite
server:
  port: 8080
`,
		Want: &config.Config{
			Moods: []models.Mood{
				{Emoji: "🥱", Label: "Drowsy"},
				{Emoji: "🤩", Label: "Rested"},
			},
			Settings: config.SettingsConfig{
				QualityScorer:  config.ScorerFixed,
				Cmd:            "echo saved",
				HistoryLimit:   14,
				FixedQuality:   90,
				TwentyFourHour: true,
			},
			Storage: config.StorageConfig{
				Driver: config.DriverSQLite,
			},
			Server: config.ServerConfig{
				Port: 8080,
			},
			Notifications: config.NotificationConfig{
				Enabled: false,
			},
			Display: config.DisplayConfig{
				DarkTheme: true,
			},
		},
	},
	{
		Name: "partial config falls back to defaults",
		Contents: `settings:
  history_limit: 3
`,
		Want: func() *config.Config {
			c := defaultConfig()
			c.Settings.HistoryLimit = 3

			return c
		}(),
	},
	{
		Name: "unknown scorer is rejected",
		Contents: `settings:
  quality_scorer: vibes
`,
		Err: true,
	},
	{
		Name: "fixed quality out of range is rejected",
		Contents: `settings:
  quality_scorer: fixed
  fixed_quality: 101
`,
		Err: true,
	},
	{
		Name: "duplicate mood labels are rejected",
		Contents: `moods:
  - emoji: "😴"
    label: Sleepy
  - emoji: "💤"
    label: sleepy
`,
		Err: true,
	},
	{
		Name: "unknown storage driver is rejected",
		Contents: `storage:
  driver: redis
`,
		Err: true,
	},
	{
		Name:     "zero history limit is rejected",
		Contents: "settings:\n  history_limit: 0\n",
		Err:      true,
	},
}

func TestViperReadConfig(t *testing.T) {
	for _, tc := range readTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			err := os.WriteFile(configPath, []byte(tc.Contents), 0o600)
			require.NoError(t, err)

			cfg, err := config.New(config.WithViperConfig(configPath))
			if tc.Err {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.Want, cfg)
		})
	}
}
