package app

import "github.com/urfave/cli/v2"

var (
	atFlag = &cli.StringFlag{
		Name:  "at",
		Usage: "Use this time instead of now (e.g. '10 mins ago', '22:30')",
	}

	moodFlag = &cli.StringFlag{
		Name:    "mood",
		Aliases: []string{"m"},
		Usage:   "Mood label to save with the session (see 'slumber moods')",
	}

	notesFlag = &cli.StringFlag{
		Name:    "notes",
		Aliases: []string{"n"},
		Usage:   "Notes to save with the session",
	}

	promptFlag = &cli.BoolFlag{
		Name:    "prompt",
		Aliases: []string{"p"},
		Usage:   "Pick the mood and enter notes interactively",
	}

	limitFlag = &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"l"},
		Usage:   "Number of recent sessions to show (default: settings.history_limit)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yamlFlag = &cli.BoolFlag{
		Name:  "yaml",
		Usage: "Print the output as YAML",
	}

	serveFlag = &cli.BoolFlag{
		Name:  "serve",
		Usage: "Serve the history page on localhost",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Port for the history page (default: server.port)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the desktop notification that appears after a session is saved",
	}

	scorerFlag = &cli.StringFlag{
		Name:  "scorer",
		Usage: "Sleep quality scorer: random or fixed",
	}

	storageFlag = &cli.StringFlag{
		Name:  "storage",
		Usage: "Storage driver: bolt or sqlite",
	}
)
