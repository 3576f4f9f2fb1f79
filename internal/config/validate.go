package config

import (
	"strings"
)

const (
	minHistoryLimit = 1
	maxHistoryLimit = 365

	minQuality = 60
	maxQuality = 100
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateMoods(); err != nil {
		return err
	}

	if err := c.validateSettings(); err != nil {
		return err
	}

	return c.validateStorage()
}

func (c *Config) validateMoods() error {
	if len(c.Moods) == 0 {
		return errNoMoods
	}

	seen := make(map[string]bool, len(c.Moods))

	for i, m := range c.Moods {
		if strings.TrimSpace(m.Emoji) == "" || strings.TrimSpace(m.Label) == "" {
			return errInvalidMood.Fmt(i + 1)
		}

		key := strings.ToLower(m.Label)
		if seen[key] {
			return errDuplicateMood.Fmt(m.Label)
		}

		seen[key] = true
	}

	return nil
}

func (c *Config) validateSettings() error {
	s := c.Settings

	if s.HistoryLimit < minHistoryLimit || s.HistoryLimit > maxHistoryLimit {
		return errInvalidHistoryLimit.Fmt(minHistoryLimit, maxHistoryLimit)
	}

	switch s.QualityScorer {
	case ScorerRandom:
	case ScorerFixed:
		if s.FixedQuality < minQuality || s.FixedQuality > maxQuality {
			return errInvalidFixedQuality.Fmt(minQuality, maxQuality)
		}
	default:
		return errUnknownScorer.Fmt(s.QualityScorer)
	}

	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Driver {
	case DriverBolt, DriverSQLite:
		return nil
	default:
		return errUnknownDriver.Fmt(c.Storage.Driver)
	}
}
