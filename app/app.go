// Package app wires the slumber commands together
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/slumber/internal/config"
)

// Get retrieves the slumber app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "slumber",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Slumber is a sleep logger for the command-line. Start a timer when you go
		to bed, stop it when you wake up, then save the session with your mood
		and a few notes.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "watch",
				Usage:  "Open the interactive sleep logging screen (default)",
				Flags:  []cli.Flag{moodFlag, notesFlag},
				Action: withEnv(watchAction),
			},
			{
				Name:   "start",
				Usage:  "Start the sleep timer",
				Flags:  []cli.Flag{atFlag},
				Action: withEnv(startAction),
			},
			{
				Name:   "stop",
				Usage:  "Stop the sleep timer",
				Flags:  []cli.Flag{atFlag},
				Action: withEnv(stopAction),
			},
			{
				Name:   "save",
				Usage:  "Save the stopped session",
				Flags:  []cli.Flag{moodFlag, notesFlag, promptFlag},
				Action: withEnv(saveAction),
			},
			{
				Name:   "discard",
				Usage:  "Discard the current session without saving it",
				Action: withEnv(discardAction),
			},
			{
				Name:   "status",
				Usage:  "Print the status of the sleep timer",
				Action: withEnv(statusAction),
			},
			{
				Name:   "list",
				Usage:  "List recent sleep sessions, newest first",
				Flags:  []cli.Flag{limitFlag, jsonFlag, yamlFlag},
				Action: withEnv(listAction),
			},
			{
				Name:   "history",
				Usage:  "Chart the duration of recent sleep sessions",
				Flags:  []cli.Flag{limitFlag, jsonFlag, serveFlag, portFlag},
				Action: historyAction,
			},
			{
				Name:   "moods",
				Usage:  "List the mood catalog",
				Action: withEnv(moodsAction),
			},
			{
				Name:  "notifications",
				Usage: "Show or dismiss notifications",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List notifications",
						Action: withEnv(notificationsAction),
					},
					{
						Name:      "dismiss",
						Usage:     "Dismiss a notification",
						ArgsUsage: "ID",
						Action:    withEnv(dismissAction),
					},
				},
				Action: withEnv(notificationsAction),
			},
			{
				Name:  "schedule",
				Usage: "Show or adjust suggested sleep schedules",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List sleep schedules",
						Action: withEnv(scheduleAction),
					},
					{
						Name:      "adjust",
						Usage:     "Shift a schedule by a number of minutes (use -- before negative values)",
						ArgsUsage: "ID MINUTES",
						Action:    withEnv(adjustAction),
					},
				},
				Action: withEnv(scheduleAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			debugFlag,
			disableNotificationFlag,
			scorerFlag,
			storageFlag,
		},
		Action: withEnv(watchAction),
		Before: beforeAction,
		After:  afterAction,
	}
}
