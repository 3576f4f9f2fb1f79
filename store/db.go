package store

// Keys used by slumber.
const (
	KeyTimer         = "sleep_timer"
	KeySessions      = "sleep_sessions"
	KeyNotifications = "sleep_notifications"
	KeySchedules     = "sleep_schedules"

	// legacy split-state markers, read only by migration
	KeyLegacyStart = "sleep_start"
	KeyLegacyEnd   = "sleep_end"
)

// Tx is a view of the store through which keys are read and written.
type Tx interface {
	// Get returns the value stored under key. found is false if the key does
	// not exist.
	Get(key string) (value string, found bool, err error)
	// Set stores value under key, replacing any existing value
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error
	Remove(key string) error
}

// DB is the database storage interface.
type DB interface {
	Tx
	// Update runs fn atomically: either all of its writes are committed or,
	// if fn returns an error, none are
	Update(fn func(tx Tx) error) error
	// Close ends the database connection
	Close() error
}
