package notification

import "github.com/ayoisaiah/slumber/internal/apperr"

var (
	errNotFound = &apperr.Error{
		Message: "notification %s does not exist",
	}

	errCorruptLog = &apperr.Error{
		Message: "the notification log is unreadable",
	}

	errDesktop = &apperr.Error{
		Message: "unable to display desktop notification",
	}
)

// ErrNotFound is returned when dismissing an id that is not in the log.
var ErrNotFound error = errNotFound
