// Package session records sleep sessions and reads them back
package session

import (
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/internal/timeutil"
	"github.com/ayoisaiah/slumber/store"
)

// Recorder is the only writer of the session list.
type Recorder struct {
	scorer Scorer
	now    func() time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock sets the clock used to derive session ids.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// NewRecorder returns a Recorder that scores sessions with scorer.
func NewRecorder(scorer Scorer, opts ...Option) *Recorder {
	r := &Recorder{
		scorer: scorer,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Record builds a session from the given interval and appends it to the
// saved list within tx. Existing entries are carried over without being
// decoded, so earlier sessions are never rewritten.
func (r *Recorder) Record(
	tx store.Tx,
	startTime, endTime int64,
	mood *models.Mood,
	notes string,
) (models.SleepSession, error) {
	if startTime <= 0 || endTime < startTime {
		return models.SleepSession{}, errIncompleteSession
	}

	sess := models.SleepSession{
		ID:        r.now().UnixMilli(),
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  timeutil.FormatMillis(endTime - startTime),
		Notes:     notes,
		Quality:   clampQuality(r.scorer.Score(startTime, endTime)),
	}

	if mood != nil {
		m := *mood
		sess.Mood = &m
	}

	existing, err := loadRaw(tx)
	if err != nil {
		return models.SleepSession{}, err
	}

	b, err := json.Marshal(sess)
	if err != nil {
		return models.SleepSession{}, err
	}

	out, err := json.Marshal(append(existing, json.RawMessage(b)))
	if err != nil {
		return models.SleepSession{}, err
	}

	err = tx.Set(store.KeySessions, string(out))
	if err != nil {
		return models.SleepSession{}, err
	}

	slog.Info(
		"recorded sleep session",
		slog.Int64("id", sess.ID),
		slog.String("duration", sess.Duration),
		slog.Int("quality", sess.Quality),
	)

	return sess, nil
}
