package store

import (
	"log/slog"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/ayoisaiah/slumber/internal/models"
)

// migrate folds the legacy sleep_start and sleep_end markers into a single
// timer record. A marker without end resumes a running timer, both markers
// restore a stopped one. Markers that cannot be parsed are dropped so the
// timer comes back idle.
func migrate(tx Tx) error {
	start, hasStart, err := tx.Get(KeyLegacyStart)
	if err != nil {
		return err
	}

	end, hasEnd, err := tx.Get(KeyLegacyEnd)
	if err != nil {
		return err
	}

	if !hasStart && !hasEnd {
		return nil
	}

	_, hasTimer, err := tx.Get(KeyTimer)
	if err != nil {
		return err
	}

	if !hasTimer {
		state, ok := stateFromMarkers(start, hasStart, end, hasEnd)
		if ok {
			b, err := json.Marshal(state)
			if err != nil {
				return err
			}

			if err := tx.Set(KeyTimer, string(b)); err != nil {
				return err
			}

			slog.Info(
				"migrated legacy timer markers",
				slog.String("status", string(state.Status)),
			)
		} else {
			slog.Warn(
				"dropping malformed timer markers",
				slog.String("start", start),
				slog.String("end", end),
			)
		}
	}

	if err := tx.Remove(KeyLegacyStart); err != nil {
		return err
	}

	return tx.Remove(KeyLegacyEnd)
}

func stateFromMarkers(
	start string,
	hasStart bool,
	end string,
	hasEnd bool,
) (*models.TimerState, bool) {
	if !hasStart {
		return nil, false
	}

	startMS, err := strconv.ParseInt(start, 10, 64)
	if err != nil || startMS <= 0 {
		return nil, false
	}

	if !hasEnd {
		return &models.TimerState{
			Status:    models.Running,
			StartTime: &startMS,
		}, true
	}

	endMS, err := strconv.ParseInt(end, 10, 64)
	if err != nil || endMS < startMS {
		return nil, false
	}

	return &models.TimerState{
		Status:    models.Stopped,
		StartTime: &startMS,
		EndTime:   &endMS,
	}, true
}
