package config

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/slumber/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	At                  string
	Mood                string
	Notes               string
	Scorer              string
	Driver              string
	Limit               int
	Port                uint
	DisableNotification bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			At:                  ctx.String("at"),
			Mood:                ctx.String("mood"),
			Notes:               ctx.String("notes"),
			Scorer:              ctx.String("scorer"),
			Driver:              ctx.String("storage"),
			Limit:               ctx.Int("limit"),
			Port:                ctx.Uint("port"),
			DisableNotification: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if at := strings.TrimSpace(opts.At); at != "" {
		t, err := timeutil.FromStr(at)
		if err != nil {
			return errInvalidAt.Wrap(err)
		}

		c.CLI.At = t
	}

	c.CLI.Mood = strings.TrimSpace(opts.Mood)
	c.CLI.Notes = opts.Notes

	if opts.Limit > 0 {
		c.CLI.Limit = opts.Limit
	}

	if opts.Port > 0 {
		c.Server.Port = opts.Port
	}

	if opts.Scorer != "" {
		c.Settings.QualityScorer = opts.Scorer
	}

	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}

	if opts.DisableNotification {
		c.Notifications.Enabled = false
	}

	return nil
}
