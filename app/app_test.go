package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/slumber/internal/config"
	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/timer"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "slumber-app")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	os.Setenv("NO_COLOR", "1")
	xdg.Reload()

	code := m.Run()

	_ = os.RemoveAll(dir)

	os.Exit(code)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	old := config.Stdout
	config.Stdout = &out

	defer func() {
		config.Stdout = old
	}()

	err := Get().Run(append([]string{"slumber"}, args...))

	return out.String(), err
}

func TestSleepFlow(t *testing.T) {
	for _, driver := range []string{config.DriverBolt, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			global := []string{
				"--storage", driver,
				"--scorer", "fixed",
				"--disable-notification",
			}

			cmd := func(args ...string) error {
				_, err := run(t, append(append([]string{}, global...), args...)...)
				return err
			}

			require.NoError(t, cmd("start", "--at", "10 hours ago"))
			require.NoError(t, cmd("status"))

			err := cmd("save")
			assert.ErrorIs(t, err, timer.ErrNotStopped)

			require.NoError(t, cmd("stop"))
			require.NoError(t, cmd("save", "--mood", "happy", "--notes", "deep sleep"))

			err = cmd("save")
			assert.ErrorIs(t, err, timer.ErrNotStopped)

			out, err := run(t, append(global, "list", "--json")...)
			require.NoError(t, err)

			var sessions []models.SleepSession
			require.NoError(t, json.Unmarshal([]byte(out), &sessions))
			require.Len(t, sessions, 1)

			s := sessions[0]
			assert.Equal(t, "Happy", s.Mood.Label)
			assert.Equal(t, "deep sleep", s.Notes)
			assert.Equal(t, 80, s.Quality)
			assert.GreaterOrEqual(t, s.EndTime-s.StartTime, int64(9*60*60*1000))

			out, err = run(t, append(global, "list", "--yaml")...)
			require.NoError(t, err)

			var fromYAML []models.SleepSession
			require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
			assert.Equal(t, sessions, fromYAML)

			out, err = run(t, append(global, "history", "--json")...)
			require.NoError(t, err)

			var points []models.ChartPoint
			require.NoError(t, json.Unmarshal([]byte(out), &points))
			require.Len(t, points, 1)
			assert.GreaterOrEqual(t, points[0].Hours, 9.0)
		})
	}
}

func TestUnknownMoodIsRejected(t *testing.T) {
	_, err := run(t, "--disable-notification", "save", "--mood", "Grumpy")
	assert.Error(t, err)
}

func TestScheduleAdjust(t *testing.T) {
	_, err := run(t, "schedule", "adjust", "1", "15")
	require.NoError(t, err)

	_, err = run(t, "schedule", "adjust", "1")
	assert.Error(t, err)

	_, err = run(t, "schedule", "adjust", "one", "15")
	assert.Error(t, err)
}

func TestDismissNotification(t *testing.T) {
	_, err := run(t, "notifications", "dismiss", "does-not-exist")
	assert.Error(t, err)

	_, err = run(t, "notifications", "dismiss")
	assert.Error(t, err)
}
