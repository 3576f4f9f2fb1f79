package store

import "github.com/ayoisaiah/slumber/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is slumber already running? Only one instance can be active at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open the store",
	}

	errReadStore = &apperr.Error{
		Message: "unable to read %q from the store",
	}

	errWriteStore = &apperr.Error{
		Message: "unable to write %q to the store",
	}
)

// ErrAlreadyRunning is returned when the store is locked by another slumber
// process.
var ErrAlreadyRunning error = errAlreadyRunning
