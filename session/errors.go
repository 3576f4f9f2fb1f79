package session

import "github.com/ayoisaiah/slumber/internal/apperr"

var (
	errIncompleteSession = &apperr.Error{
		Message: "a session needs both a start and an end time, with the end after the start",
	}

	errCorruptSessions = &apperr.Error{
		Message: "the saved session list is not readable",
	}

	errInvalidSession = &apperr.Error{
		Message: "invalid session %d: %s",
	}

	errUnknownScorer = &apperr.Error{
		Message: "unknown quality scorer: %s",
	}
)

// ErrIncompleteSession is returned when a session is recorded without a
// valid start and end.
var ErrIncompleteSession error = errIncompleteSession
