package timer

import "github.com/ayoisaiah/slumber/internal/apperr"

var (
	errNotStopped = &apperr.Error{
		Message: "stop the timer before saving the session",
	}

	errStartBeforeEpoch = &apperr.Error{
		Message: "the sleep start must be later than 1970-01-01 00:00 UTC",
	}

	errInvalidTimer = &apperr.Error{
		Message: "invalid timer record: %s",
	}

	errHookCmd = &apperr.Error{
		Message: "unable to run the post-save command",
	}
)

// ErrNotStopped is returned when saving while the timer is not stopped.
var ErrNotStopped error = errNotStopped

// ErrStartBeforeEpoch is returned when a start instant could never be saved.
var ErrStartBeforeEpoch error = errStartBeforeEpoch
