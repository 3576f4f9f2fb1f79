// Package timer operates the sleep timer and recovers it across restarts
package timer

import (
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/internal/timeutil"
	"github.com/ayoisaiah/slumber/session"
	"github.com/ayoisaiah/slumber/store"
)

// Timer is the sleep timer. Its state is persisted as a single record and
// every transition writes the new state before adopting it.
type Timer struct {
	db    store.DB
	rec   *session.Recorder
	state models.TimerState
}

// New returns an idle timer. Call Load to pick up a persisted one.
func New(db store.DB, rec *session.Recorder) *Timer {
	return &Timer{
		db:    db,
		rec:   rec,
		state: idle(),
	}
}

func idle() models.TimerState {
	return models.TimerState{Status: models.Idle}
}

// Validate reports whether s is a well formed timer state.
func Validate(s *models.TimerState) error {
	switch s.Status {
	case models.Idle:
		return nil
	case models.Running:
		if s.StartTime == nil || s.EndTime != nil {
			return errInvalidTimer.Fmt("running timer needs a start and no end")
		}

		if *s.StartTime <= 0 {
			return errInvalidTimer.Fmt("start is not after the epoch")
		}
	case models.Stopped:
		if s.StartTime == nil || s.EndTime == nil {
			return errInvalidTimer.Fmt("stopped timer needs a start and an end")
		}

		if *s.StartTime <= 0 {
			return errInvalidTimer.Fmt("start is not after the epoch")
		}

		if *s.EndTime < *s.StartTime {
			return errInvalidTimer.Fmt("end precedes start")
		}
	default:
		return errInvalidTimer.Fmt("unknown status " + string(s.Status))
	}

	return nil
}

// Load reads the persisted timer. A missing record leaves the timer idle,
// and so does a malformed one, after logging a warning.
func (t *Timer) Load() error {
	v, found, err := t.db.Get(store.KeyTimer)
	if err != nil {
		return err
	}

	if !found {
		t.state = idle()
		return nil
	}

	var s models.TimerState

	err = json.Unmarshal([]byte(v), &s)
	if err == nil {
		err = Validate(&s)
	}

	if err != nil {
		slog.Warn(
			"ignoring malformed timer record",
			slog.String("value", v),
			slog.Any("error", err),
		)

		t.state = idle()

		return nil
	}

	t.state = s

	return nil
}

// State returns a copy of the current state.
func (t *Timer) State() models.TimerState {
	s := t.state

	if s.StartTime != nil {
		v := *s.StartTime
		s.StartTime = &v
	}

	if s.EndTime != nil {
		v := *s.EndTime
		s.EndTime = &v
	}

	return s
}

// Status returns the current status.
func (t *Timer) Status() models.TimerStatus {
	return t.state.Status
}

// Elapsed is the duration shown for the current state: time since start
// while running, the recorded interval when stopped, and zero when idle.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	switch t.state.Status {
	case models.Running:
		d := timeutil.ToMillis(now) - *t.state.StartTime
		if d < 0 {
			return 0
		}

		return time.Duration(d) * time.Millisecond
	case models.Stopped:
		return time.Duration(*t.state.EndTime-*t.state.StartTime) *
			time.Millisecond
	default:
		return 0
	}
}

func (t *Timer) persist(next models.TimerState) error {
	b, err := json.Marshal(next)
	if err != nil {
		return err
	}

	err = t.db.Set(store.KeyTimer, string(b))
	if err != nil {
		slog.Error(
			"unable to persist timer",
			slog.String("status", string(next.Status)),
			slog.Any("error", err),
		)

		return err
	}

	t.state = next

	return nil
}

// Start begins a new sleep interval at the given instant. It does nothing
// and returns false if the timer is already running. Starting a stopped
// timer replaces the unsaved interval. A start at or before the Unix epoch
// is rejected with ErrStartBeforeEpoch.
func (t *Timer) Start(at time.Time) (bool, error) {
	if t.state.Status == models.Running {
		return false, nil
	}

	start := timeutil.ToMillis(at)
	if start <= 0 {
		return false, errStartBeforeEpoch
	}

	err := t.persist(models.TimerState{
		Status:    models.Running,
		StartTime: &start,
	})
	if err != nil {
		return false, err
	}

	slog.Info("timer started", slog.Int64("start", start))

	return true, nil
}

// Stop ends the running interval at the given instant, which is moved up to
// the start if it precedes it. It returns false if the timer is not running.
func (t *Timer) Stop(at time.Time) (bool, error) {
	if t.state.Status != models.Running {
		return false, nil
	}

	start := *t.state.StartTime
	end := max(timeutil.ToMillis(at), start)

	err := t.persist(models.TimerState{
		Status:    models.Stopped,
		StartTime: &start,
		EndTime:   &end,
	})
	if err != nil {
		return false, err
	}

	slog.Info("timer stopped", slog.Int64("end", end))

	return true, nil
}

// Save records the stopped interval as a sleep session and resets the timer.
// The session append and the removal of the timer record happen in one
// transaction.
func (t *Timer) Save(
	mood *models.Mood,
	notes string,
) (models.SleepSession, error) {
	if t.state.Status != models.Stopped {
		return models.SleepSession{}, errNotStopped
	}

	var sess models.SleepSession

	err := t.db.Update(func(tx store.Tx) error {
		var err error

		sess, err = t.rec.Record(
			tx,
			*t.state.StartTime,
			*t.state.EndTime,
			mood,
			notes,
		)
		if err != nil {
			return err
		}

		return tx.Remove(store.KeyTimer)
	})
	if err != nil {
		slog.Error("unable to save session", slog.Any("error", err))

		return models.SleepSession{}, err
	}

	t.state = idle()

	return sess, nil
}

// Discard drops the current interval without recording it. It returns false
// if the timer is idle.
func (t *Timer) Discard() (bool, error) {
	if t.state.Status == models.Idle {
		return false, nil
	}

	err := t.db.Remove(store.KeyTimer)
	if err != nil {
		slog.Error("unable to discard timer", slog.Any("error", err))

		return false, err
	}

	t.state = idle()

	slog.Info("timer discarded")

	return true, nil
}
