// Package schedule keeps the suggested sleep windows and shifts them on
// request
package schedule

import (
	"log/slog"
	"slices"

	"github.com/goccy/go-json"

	"github.com/ayoisaiah/slumber/internal/apperr"
	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/internal/timeutil"
	"github.com/ayoisaiah/slumber/store"
)

// confidenceStep is the confidence change per minute of adjustment.
const confidenceStep = 0.001

var (
	errNotFound = &apperr.Error{
		Message: "schedule %d does not exist",
	}

	errCorruptSchedules = &apperr.Error{
		Message: "the saved schedules are unreadable",
	}
)

// ErrNotFound is returned when adjusting an unknown schedule.
var ErrNotFound error = errNotFound

// Defaults seed the schedule list the first time it is read.
func Defaults() []models.Schedule {
	return []models.Schedule{
		{ID: 1, Start: "22:30", End: "06:30", Confidence: 0.85},
		{ID: 2, Start: "23:00", End: "07:00", Confidence: 0.75},
		{ID: 3, Start: "22:00", End: "06:00", Confidence: 0.90},
	}
}

// Book is the persisted schedule list.
type Book struct {
	db store.DB
}

// New returns the schedule list kept in db.
func New(db store.DB) *Book {
	return &Book{db: db}
}

func read(tx store.Tx) ([]models.Schedule, error) {
	v, found, err := tx.Get(store.KeySchedules)
	if err != nil {
		return nil, err
	}

	if !found {
		seed := Defaults()

		return seed, write(tx, seed)
	}

	var list []models.Schedule

	err = json.Unmarshal([]byte(v), &list)
	if err != nil {
		return nil, errCorruptSchedules.Wrap(err)
	}

	return list, nil
}

func write(tx store.Tx, list []models.Schedule) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}

	return tx.Set(store.KeySchedules, string(b))
}

// List returns the saved schedules.
func (b *Book) List() ([]models.Schedule, error) {
	var list []models.Schedule

	err := b.db.Update(func(tx store.Tx) error {
		var err error

		list, err = read(tx)

		return err
	})

	return list, err
}

// Adjust shifts both ends of the schedule with the given id by minutes,
// wrapping around midnight, and moves its confidence by the same amount
// scaled to confidenceStep.
func (b *Book) Adjust(id, minutes int) (models.Schedule, error) {
	var updated models.Schedule

	err := b.db.Update(func(tx store.Tx) error {
		list, err := read(tx)
		if err != nil {
			return err
		}

		i := slices.IndexFunc(list, func(s models.Schedule) bool {
			return s.ID == id
		})
		if i < 0 {
			return errNotFound.Fmt(id)
		}

		updated, err = Shift(list[i], minutes)
		if err != nil {
			return err
		}

		list[i] = updated

		return write(tx, list)
	})
	if err != nil {
		return models.Schedule{}, err
	}

	slog.Info(
		"adjusted schedule",
		slog.Int("id", id),
		slog.Int("minutes", minutes),
		slog.Float64("confidence", updated.Confidence),
	)

	return updated, nil
}

// Shift returns s moved by minutes.
func Shift(s models.Schedule, minutes int) (models.Schedule, error) {
	start, err := timeutil.ShiftClockTime(s.Start, minutes)
	if err != nil {
		return s, err
	}

	end, err := timeutil.ShiftClockTime(s.End, minutes)
	if err != nil {
		return s, err
	}

	c := s.Confidence + float64(minutes)*confidenceStep
	c = min(max(c, 0), 1)

	s.Start = start
	s.End = end
	s.Confidence = timeutil.RoundTo(c, 3)

	return s, nil
}
