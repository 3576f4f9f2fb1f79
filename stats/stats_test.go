package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/slumber/internal/models"
)

// day returns epoch ms for 22:00 UTC on the given day of January 2025.
func day(d int) int64 {
	return time.Date(2025, time.January, d, 22, 0, 0, 0, time.UTC).UnixMilli()
}

func sample() []models.SleepSession {
	return []models.SleepSession{
		{ID: 1, StartTime: day(1), EndTime: day(1) + 27000000, Duration: "07:30:00", Quality: 70},
		{ID: 2, StartTime: day(2), EndTime: day(2) + 29745000, Duration: "08:15:45", Quality: 95},
		{ID: 3, StartTime: day(3), EndTime: day(3) + 21600000, Duration: "06:00:00", Quality: 62},
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(sample())

	want := Summary{
		Count:        3,
		Total:        "21:45:45",
		Average:      "07:15:15",
		TotalTime:    21*time.Hour + 45*time.Minute + 45*time.Second,
		AverageTime:  7*time.Hour + 15*time.Minute + 15*time.Second,
		AvgQuality:   75.7,
		BestQuality:  95,
		WorstQuality: 62,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)

	assert.Equal(t, 0, got.Count)
	assert.Equal(t, "00:00:00", got.Total)
	assert.Equal(t, "00:00:00", got.Average)
}

func TestChart(t *testing.T) {
	cases := []struct {
		name string
		want []models.ChartPoint
		n    int
	}{
		{
			name: "last two",
			n:    2,
			want: []models.ChartPoint{
				{Date: "2025-01-02", Hours: 8.25},
				{Date: "2025-01-03", Hours: 6},
			},
		},
		{
			name: "more than saved",
			n:    7,
			want: []models.ChartPoint{
				{Date: "2025-01-01", Hours: 7.5},
				{Date: "2025-01-02", Hours: 8.25},
				{Date: "2025-01-03", Hours: 6},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Chart(sample(), tc.n)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Chart() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChartRoundsToTwoPlaces(t *testing.T) {
	sessions := []models.SleepSession{
		{ID: 1, StartTime: day(4), EndTime: day(4) + 1, Duration: "07:20:59", Quality: 80},
	}

	got := Chart(sessions, 7)
	assert.Equal(t, []models.ChartPoint{{Date: "2025-01-04", Hours: 7.33}}, got)
	assert.Empty(t, Chart(nil, 7))
}

func TestRecent(t *testing.T) {
	got := Recent(sample(), 2)

	assert.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer

	sum := Summarize(nil)

	PrintSummary(&buf, &sum)
	PrintChart(&buf, nil)

	assert.Equal(t, NoSessionsMsg+"\n"+NoSessionsMsg+"\n", buf.String())
}
