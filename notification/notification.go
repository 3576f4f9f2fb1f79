// Package notification manages the notification log and desktop
// notifications
package notification

import (
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/goccy/go-json"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/store"
)

// DefaultTips seed the log the first time it is read.
var DefaultTips = []string{
	"⏰ Time to sleep! Maintain your schedule.",
	"😴 You slept better than last week!",
	"💡 Try reducing caffeine before bed.",
}

// Log is the persisted notification log.
type Log struct {
	db  store.DB
	now func() time.Time
}

// NewLog returns the notification log kept in db.
func NewLog(db store.DB) *Log {
	return &Log{
		db:  db,
		now: time.Now,
	}
}

func (l *Log) read(tx store.Tx) ([]models.Notification, error) {
	v, found, err := tx.Get(store.KeyNotifications)
	if err != nil {
		return nil, err
	}

	if !found {
		created := l.now().UnixMilli()

		seed := make([]models.Notification, len(DefaultTips))
		for i, text := range DefaultTips {
			seed[i] = models.Notification{
				ID:        strconv.Itoa(i + 1),
				Text:      text,
				CreatedAt: created,
			}
		}

		return seed, write(tx, seed)
	}

	var list []models.Notification

	if v != "" {
		err = json.Unmarshal([]byte(v), &list)
		if err != nil {
			return nil, errCorruptLog.Wrap(err)
		}
	}

	return list, nil
}

func write(tx store.Tx, list []models.Notification) error {
	if list == nil {
		list = []models.Notification{}
	}

	b, err := json.Marshal(list)
	if err != nil {
		return err
	}

	return tx.Set(store.KeyNotifications, string(b))
}

func sortByID(list []models.Notification) {
	slices.SortStableFunc(list, func(a, b models.Notification) int {
		switch {
		case natural.Less(a.ID, b.ID):
			return -1
		case natural.Less(b.ID, a.ID):
			return 1
		default:
			return 0
		}
	})
}

// List returns every notification ordered by id.
func (l *Log) List() ([]models.Notification, error) {
	var list []models.Notification

	err := l.db.Update(func(tx store.Tx) error {
		var err error

		list, err = l.read(tx)

		return err
	})
	if err != nil {
		return nil, err
	}

	sortByID(list)

	return list, nil
}

// Add appends a notification and returns it. Its id is one more than the
// largest numeric id in the log.
func (l *Log) Add(text string) (models.Notification, error) {
	var n models.Notification

	err := l.db.Update(func(tx store.Tx) error {
		list, err := l.read(tx)
		if err != nil {
			return err
		}

		next := 1

		for i := range list {
			id, err := strconv.Atoi(list[i].ID)
			if err == nil && id >= next {
				next = id + 1
			}
		}

		n = models.Notification{
			ID:        strconv.Itoa(next),
			Text:      text,
			CreatedAt: l.now().UnixMilli(),
		}

		return write(tx, append(list, n))
	})
	if err != nil {
		return models.Notification{}, err
	}

	return n, nil
}

// Dismiss removes the notification with the given id.
func (l *Log) Dismiss(id string) error {
	return l.db.Update(func(tx store.Tx) error {
		list, err := l.read(tx)
		if err != nil {
			return err
		}

		i := slices.IndexFunc(list, func(n models.Notification) bool {
			return n.ID == id
		})
		if i < 0 {
			return errNotFound.Fmt(id)
		}

		slog.Debug("dismissing notification", slog.String("id", id))

		return write(tx, slices.Delete(list, i, i+1))
	})
}

// Desktop sends a desktop notification.
func Desktop(title, msg string) error {
	err := beeep.Notify(title, msg, "")
	if err != nil {
		return errDesktop.Wrap(err)
	}

	return nil
}
