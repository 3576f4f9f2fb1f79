// Package stats reports sleep session statistics
package stats

import (
	"time"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/internal/timeutil"
	"github.com/ayoisaiah/slumber/session"
)

// Summary aggregates a list of sleep sessions.
type Summary struct {
	Total        string        `json:"total"`
	Average      string        `json:"average"`
	TotalTime    time.Duration `json:"-"`
	AverageTime  time.Duration `json:"-"`
	Count        int           `json:"count"`
	BestQuality  int           `json:"bestQuality"`
	WorstQuality int           `json:"worstQuality"`
	AvgQuality   float64       `json:"averageQuality"`
}

// sessionDuration is the recorded duration of s. The stored HH:MM:SS string
// is authoritative; the interval is used if it cannot be parsed.
func sessionDuration(s *models.SleepSession) time.Duration {
	d, err := timeutil.ParseDuration(s.Duration)
	if err != nil {
		return time.Duration(s.EndTime-s.StartTime) * time.Millisecond
	}

	return d
}

// Summarize computes totals and averages over sessions.
func Summarize(sessions []models.SleepSession) Summary {
	sum := Summary{
		Count:   len(sessions),
		Total:   timeutil.FormatDuration(0),
		Average: timeutil.FormatDuration(0),
	}

	if len(sessions) == 0 {
		return sum
	}

	var quality int

	sum.BestQuality = session.MinQuality
	sum.WorstQuality = session.MaxQuality

	for i := range sessions {
		s := &sessions[i]

		sum.TotalTime += sessionDuration(s)
		quality += s.Quality

		sum.BestQuality = max(sum.BestQuality, s.Quality)
		sum.WorstQuality = min(sum.WorstQuality, s.Quality)
	}

	sum.AverageTime = sum.TotalTime / time.Duration(len(sessions))
	sum.AvgQuality = timeutil.RoundTo(
		float64(quality)/float64(len(sessions)),
		1,
	)
	sum.Total = timeutil.FormatDuration(sum.TotalTime)
	sum.Average = timeutil.FormatDuration(sum.AverageTime)

	return sum
}

// Chart returns one point per session for the last n sessions. Hours count
// whole minutes only, so seconds never move a bar.
func Chart(sessions []models.SleepSession, n int) []models.ChartPoint {
	last := session.Last(sessions, n)

	points := make([]models.ChartPoint, len(last))

	for i := range last {
		d := sessionDuration(&last[i])

		h := int(d.Hours())
		m := int(d.Minutes()) % 60

		points[i] = models.ChartPoint{
			Date:  timeutil.DateKey(last[i].StartTime),
			Hours: timeutil.RoundTo(float64(h)+float64(m)/60, 2),
		}
	}

	return points
}

// Recent returns the last n sessions, newest first.
func Recent(sessions []models.SleepSession, n int) []models.SleepSession {
	last := session.Last(sessions, n)

	out := make([]models.SleepSession, len(last))

	for i := range last {
		out[len(last)-1-i] = last[i]
	}

	return out
}
