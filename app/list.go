package app

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/stats"
)

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// listSessions prints out a table of sessions.
func listSessions(
	w io.Writer,
	sessions []models.SleepSession,
	twentyFourHour bool,
) error {
	if len(sessions) == 0 {
		fmt.Fprintln(w, stats.NoSessionsMsg)
		return nil
	}

	stats.PrintSessions(w, sessions, twentyFourHour)

	return nil
}
