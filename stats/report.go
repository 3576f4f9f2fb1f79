package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/internal/timeutil"
	"github.com/ayoisaiah/slumber/internal/ui"
)

const (
	// NoSessionsMsg is printed in place of an empty session list.
	NoSessionsMsg = "No sleep sessions have been saved yet"

	// pterm bars are integers, so hours are charted in hundredths
	chartScale = 100
)

// PrintSessions writes sessions as a table.
func PrintSessions(
	w io.Writer,
	sessions []models.SleepSession,
	twentyFourHour bool,
) {
	layout := "Jan 02, 2006 03:04 PM"
	if twentyFourHour {
		layout = "Jan 02, 2006 15:04"
	}

	data := [][]string{
		{"#", "START", "END", "DURATION", "MOOD", "QUALITY", "NOTES"},
	}

	for i := range sessions {
		s := &sessions[i]

		var mood string
		if s.Mood != nil {
			mood = s.Mood.String()
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			timeutil.FromMillis(s.StartTime).Format(layout),
			timeutil.FromMillis(s.EndTime).Format(layout),
			ui.Cyan(s.Duration),
			mood,
			ui.Quality(s.Quality),
			s.Notes,
		})
	}

	ui.PrintTable(data, w)
}

// PrintSummary writes the totals and averages of a summary.
func PrintSummary(w io.Writer, sum *Summary) {
	if sum.Count == 0 {
		fmt.Fprintln(w, NoSessionsMsg)
		return
	}

	fmt.Fprintln(w, ui.Highlight("Summary"))
	fmt.Fprintln(w, "Sessions:", ui.Green(sum.Count))
	fmt.Fprintln(w, "Time slept:", ui.Green(sum.Total))
	fmt.Fprintln(w, "Average night:", ui.Green(sum.Average))
	fmt.Fprintf(
		w,
		"Quality: %s avg, %s best, %s worst\n",
		ui.Green(sum.AvgQuality),
		ui.Quality(sum.BestQuality),
		ui.Quality(sum.WorstQuality),
	)
}

// PrintChart writes the history chart.
func PrintChart(w io.Writer, points []models.ChartPoint) {
	if len(points) == 0 {
		fmt.Fprintln(w, NoSessionsMsg)
		return
	}

	bars := make([]ui.Bar, len(points))

	for i, p := range points {
		bars[i] = ui.Bar{
			Label: p.Date,
			Value: p.Hours,
		}
	}

	fmt.Fprintln(w, ui.Highlight("Sleep duration (hours)"))

	ui.PrintBarChart(bars, chartScale, w)
}
