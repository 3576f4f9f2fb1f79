// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/slumber/internal/apperr"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
	minutesInAnHour  = 60
	hoursInADay      = 24
	minutesInADay    = hoursInADay * minutesInAnHour
)

const (
	zeroDuration = "00:00:00"
	dateLayout   = "2006-01-02"
)

var (
	errInvalidDuration = &apperr.Error{
		Message: "invalid duration %q: expected HH:MM:SS",
	}

	errInvalidClockTime = &apperr.Error{
		Message: "invalid clock time %q: expected HH:MM",
	}

	errParseTime = &apperr.Error{
		Message: "unable to parse time %q",
	}
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundTo rounds f to the given number of decimal places.
func RoundTo(f float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(f*p) / p
}

func formatSeconds(total int64) string {
	if total <= 0 {
		return zeroDuration
	}

	hrs := total / secondsInAnHour
	mins := (total % secondsInAnHour) / secondsInAMinute
	secs := total % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// FormatDuration formats d as HH:MM:SS. Hours are not wrapped at 24 and
// non-positive durations format as 00:00:00.
func FormatDuration(d time.Duration) string {
	return formatSeconds(int64(d / time.Second))
}

// FormatMillis formats a millisecond interval as HH:MM:SS.
func FormatMillis(ms int64) string {
	return formatSeconds(ms / int64(time.Second/time.Millisecond))
}

// ParseDuration parses an HH:MM:SS string produced by FormatDuration.
func ParseDuration(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, errInvalidDuration.Fmt(s)
	}

	values := make([]int64, len(parts))

	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil || v < 0 {
			return 0, errInvalidDuration.Fmt(s)
		}

		values[i] = v
	}

	if values[1] >= minutesInAnHour || values[2] >= secondsInAMinute {
		return 0, errInvalidDuration.Fmt(s)
	}

	total := values[0]*secondsInAnHour + values[1]*secondsInAMinute + values[2]

	return time.Duration(total) * time.Second, nil
}

// ParseClockTime splits an HH:MM string into its hour and minute.
func ParseClockTime(s string) (hour, minute int, err error) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, errInvalidClockTime.Fmt(s)
	}

	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour >= hoursInADay {
		return 0, 0, errInvalidClockTime.Fmt(s)
	}

	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute >= minutesInAnHour {
		return 0, 0, errInvalidClockTime.Fmt(s)
	}

	return hour, minute, nil
}

// FormatClockTime formats an hour and minute as HH:MM.
func FormatClockTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ShiftClockTime moves an HH:MM clock time by the given number of minutes,
// wrapping around midnight.
func ShiftClockTime(s string, minutes int) (string, error) {
	h, m, err := ParseClockTime(s)
	if err != nil {
		return "", err
	}

	total := (h*minutesInAnHour + m + minutes) % minutesInADay
	if total < 0 {
		total += minutesInADay
	}

	return FormatClockTime(total/minutesInAnHour, total%minutesInAnHour), nil
}

// ToMillis converts t to epoch milliseconds.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts epoch milliseconds to a local time value.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// DateKey returns the UTC calendar date of an epoch millisecond instant in
// YYYY-MM-DD form, or an empty string for an unset instant.
func DateKey(ms int64) string {
	if ms == 0 {
		return ""
	}

	return time.UnixMilli(ms).UTC().Format(dateLayout)
}

// FromStr parses a natural language time expression such as "10 mins ago"
// or "22:30" relative to the current time.
func FromStr(s string) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParseTime.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
