package session

import (
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/internal/timeutil"
	"github.com/ayoisaiah/slumber/store"
)

// loadRaw returns the saved session list as undecoded entries.
func loadRaw(tx store.Tx) ([]json.RawMessage, error) {
	v, found, err := tx.Get(store.KeySessions)
	if err != nil {
		return nil, err
	}

	if !found || v == "" {
		return []json.RawMessage{}, nil
	}

	var raw []json.RawMessage

	err = json.Unmarshal([]byte(v), &raw)
	if err != nil {
		return nil, errCorruptSessions.Wrap(err)
	}

	if raw == nil {
		raw = []json.RawMessage{}
	}

	return raw, nil
}

// Load returns every saved session in the order it was saved. Entries that
// fail validation are skipped.
func Load(tx store.Tx) ([]models.SleepSession, error) {
	raw, err := loadRaw(tx)
	if err != nil {
		return nil, err
	}

	sessions := make([]models.SleepSession, 0, len(raw))

	for i, r := range raw {
		var sess models.SleepSession

		err := json.Unmarshal(r, &sess)
		if err == nil {
			err = Validate(&sess)
		}

		if err != nil {
			slog.Warn(
				"skipping unreadable session",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			continue
		}

		sessions = append(sessions, sess)
	}

	return sessions, nil
}

// Validate checks a decoded session against the invariants every saved
// session satisfies.
func Validate(s *models.SleepSession) error {
	switch {
	case s.ID <= 0:
		return errInvalidSession.Fmt(s.ID, "missing id")
	case s.StartTime <= 0 || s.EndTime < s.StartTime:
		return errInvalidSession.Fmt(s.ID, "bad start or end time")
	case s.Quality < MinQuality || s.Quality > MaxQuality:
		return errInvalidSession.Fmt(s.ID, "quality out of range")
	case s.Mood != nil && (s.Mood.Emoji == "" || s.Mood.Label == ""):
		return errInvalidSession.Fmt(s.ID, "incomplete mood")
	}

	if _, err := timeutil.ParseDuration(s.Duration); err != nil {
		return errInvalidSession.Fmt(s.ID, "bad duration")
	}

	return nil
}

// Last returns the final n sessions, or all of them if n is not positive.
func Last(sessions []models.SleepSession, n int) []models.SleepSession {
	if n <= 0 || n >= len(sessions) {
		return sessions
	}

	return sessions[len(sessions)-n:]
}
