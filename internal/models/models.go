// Package models defines the records slumber keeps in its store
package models

// Mood is a single entry of the mood catalog.
type Mood struct {
	Emoji string `json:"emoji" mapstructure:"emoji" yaml:"emoji"`
	Label string `json:"label" mapstructure:"label" yaml:"label"`
}

func (m Mood) String() string {
	return m.Emoji + " " + m.Label
}

// SleepSession is a recorded sleep interval. Times are epoch milliseconds
// and Duration is fixed to the HH:MM:SS of EndTime-StartTime when the
// session is saved.
type SleepSession struct {
	Mood      *Mood  `json:"mood"      yaml:"mood"`
	Duration  string `json:"duration"  yaml:"duration"`
	Notes     string `json:"notes"     yaml:"notes"`
	ID        int64  `json:"id"        yaml:"id"`
	StartTime int64  `json:"startTime" yaml:"start_time"`
	EndTime   int64  `json:"endTime"   yaml:"end_time"`
	Quality   int    `json:"quality"   yaml:"quality"`
}

// TimerStatus is the state of the sleep timer.
type TimerStatus string

const (
	Idle    TimerStatus = "idle"
	Running TimerStatus = "running"
	Stopped TimerStatus = "stopped"
)

// TimerState is the persisted form of the sleep timer. A running timer has a
// start and no end; a stopped timer has both.
type TimerState struct {
	StartTime *int64      `json:"startTime"`
	EndTime   *int64      `json:"endTime"`
	Status    TimerStatus `json:"status"`
}

// Notification is an entry in the notification log.
type Notification struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// Schedule is a suggested sleep window.
type Schedule struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	ID         int     `json:"id"`
	Confidence float64 `json:"confidence"`
}

// ChartPoint is a single bar of the sleep history chart.
type ChartPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}
