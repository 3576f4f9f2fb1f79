package timer

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/session"
	"github.com/ayoisaiah/slumber/store"
)

var errBroken = errors.New("disk on fire")

// brokenDB fails every write while passing reads through.
type brokenDB struct {
	store.DB
}

func (b *brokenDB) Set(string, string) error { return errBroken }

func (b *brokenDB) Remove(string) error { return errBroken }

func (b *brokenDB) Update(func(store.Tx) error) error { return errBroken }

func openDB(t *testing.T) (store.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	db, err := store.NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, path
}

func newTimer(db store.DB) *Timer {
	rec := session.NewRecorder(
		session.FixedScorer(80),
		session.WithClock(func() time.Time { return time.UnixMilli(9000) }),
	)

	return New(db, rec)
}

func ms(v int64) time.Time {
	return time.UnixMilli(v)
}

func ptr(v int64) *int64 {
	return &v
}

func loadSessions(t *testing.T, db store.DB) []models.SleepSession {
	t.Helper()

	sessions, err := session.Load(db)
	require.NoError(t, err)

	return sessions
}

func TestStartStopSave(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	ok, err := tm.Start(ms(1000))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tm.Stop(ms(5000))
	require.NoError(t, err)
	assert.True(t, ok)

	happy := &models.Mood{Emoji: "😊", Label: "Happy"}

	sess, err := tm.Save(happy, "woke once")
	require.NoError(t, err)

	want := models.SleepSession{
		ID:        9000,
		StartTime: 1000,
		EndTime:   5000,
		Duration:  "00:00:04",
		Mood:      happy,
		Notes:     "woke once",
		Quality:   80,
	}

	if diff := cmp.Diff(want, sess); diff != "" {
		t.Fatalf("Save() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, models.Idle, tm.Status())

	_, found, err := db.Get(store.KeyTimer)
	require.NoError(t, err)
	assert.False(t, found)

	sessions := loadSessions(t, db)
	require.Len(t, sessions, 1)
	assert.Equal(t, want, sessions[0])
}

func TestSecondSaveIsRejected(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	_, err := tm.Start(ms(1000))
	require.NoError(t, err)
	_, err = tm.Stop(ms(2000))
	require.NoError(t, err)
	_, err = tm.Save(nil, "")
	require.NoError(t, err)

	_, err = tm.Save(nil, "")
	assert.ErrorIs(t, err, ErrNotStopped)
	assert.Len(t, loadSessions(t, db), 1)
}

func TestSaveAppendsInOrder(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	for i, notes := range []string{"first", "second"} {
		start := int64(1000 * (i + 1))

		_, err := tm.Start(ms(start))
		require.NoError(t, err)
		_, err = tm.Stop(ms(start + 500))
		require.NoError(t, err)
		_, err = tm.Save(nil, notes)
		require.NoError(t, err)
	}

	sessions := loadSessions(t, db)
	require.Len(t, sessions, 2)
	assert.Equal(t, "first", sessions[0].Notes)
	assert.Equal(t, "second", sessions[1].Notes)
}

func TestInvalidTransitionsAreNoops(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	ok, err := tm.Stop(ms(100))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = tm.Discard()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = tm.Save(nil, "")
	assert.ErrorIs(t, err, ErrNotStopped)

	_, err = tm.Start(ms(1000))
	require.NoError(t, err)

	ok, err = tm.Start(ms(7000))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1000), *tm.State().StartTime)

	_, err = tm.Save(nil, "")
	assert.ErrorIs(t, err, ErrNotStopped)
	assert.Empty(t, loadSessions(t, db))
}

func TestStopBeforeStartIsClamped(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	_, err := tm.Start(ms(5000))
	require.NoError(t, err)
	_, err = tm.Stop(ms(4000))
	require.NoError(t, err)

	s := tm.State()
	assert.Equal(t, int64(5000), *s.EndTime)
	assert.Equal(t, time.Duration(0), tm.Elapsed(ms(9999)))
}

func TestStartBeforeEpochIsRejected(t *testing.T) {
	for _, at := range []int64{0, -60000} {
		db, _ := openDB(t)
		tm := newTimer(db)

		ok, err := tm.Start(ms(at))
		require.ErrorIs(t, err, ErrStartBeforeEpoch)
		assert.False(t, ok)
		assert.Equal(t, models.Idle, tm.Status())

		_, found, err := db.Get(store.KeyTimer)
		require.NoError(t, err)
		assert.False(t, found, "nothing is persisted for a rejected start")
	}
}

func TestStartFromStoppedReplacesInterval(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	_, err := tm.Start(ms(1000))
	require.NoError(t, err)
	_, err = tm.Stop(ms(2000))
	require.NoError(t, err)

	ok, err := tm.Start(ms(3000))
	require.NoError(t, err)
	assert.True(t, ok)

	s := tm.State()
	assert.Equal(t, models.Running, s.Status)
	assert.Equal(t, int64(3000), *s.StartTime)
	assert.Nil(t, s.EndTime)
}

func TestDiscard(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	_, err := tm.Start(ms(1000))
	require.NoError(t, err)

	ok, err := tm.Discard()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.Idle, tm.Status())

	_, found, err := db.Get(store.KeyTimer)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, loadSessions(t, db))
}

func TestReloadReconstructsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := store.NewClient(path)
	require.NoError(t, err)

	tm := newTimer(db)

	_, err = tm.Start(ms(1000))
	require.NoError(t, err)
	_, err = tm.Stop(ms(5000))
	require.NoError(t, err)

	want := tm.State()

	require.NoError(t, db.Close())

	db, err = store.NewClient(path)
	require.NoError(t, err)

	defer db.Close()

	reloaded := newTimer(db)
	require.NoError(t, reloaded.Load())

	if diff := cmp.Diff(want, reloaded.State()); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 4*time.Second, reloaded.Elapsed(ms(123456)))
}

func TestLoadMalformedRecordFallsBackToIdle(t *testing.T) {
	cases := map[string]string{
		"not json":          "{",
		"running with end":  `{"status":"running","startTime":1,"endTime":2}`,
		"stopped no end":    `{"status":"stopped","startTime":1,"endTime":null}`,
		"end before start":  `{"status":"stopped","startTime":5,"endTime":2}`,
		"unknown status":    `{"status":"paused","startTime":1,"endTime":null}`,
		"running no start":  `{"status":"running","startTime":null,"endTime":null}`,
		"running at epoch":  `{"status":"running","startTime":0,"endTime":null}`,
		"stopped pre epoch": `{"status":"stopped","startTime":-5000,"endTime":1000}`,
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			db, _ := openDB(t)
			require.NoError(t, db.Set(store.KeyTimer, v))

			tm := newTimer(db)
			require.NoError(t, tm.Load())
			assert.Equal(t, models.Idle, tm.Status())
		})
	}
}

func TestLoadMissingRecordIsIdle(t *testing.T) {
	db, _ := openDB(t)

	tm := newTimer(db)
	require.NoError(t, tm.Load())
	assert.Equal(t, models.TimerState{Status: models.Idle}, tm.State())
}

func TestPersistedRecordShape(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	_, err := tm.Start(ms(1000))
	require.NoError(t, err)

	v, found, err := db.Get(store.KeyTimer)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"status":"running","startTime":1000,"endTime":null}`, v)

	var s models.TimerState
	require.NoError(t, json.Unmarshal([]byte(v), &s))
	assert.Equal(t, models.TimerState{Status: models.Running, StartTime: ptr(1000)}, s)
}

func TestStoreFailureLeavesStateUnchanged(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	_, err := tm.Start(ms(1000))
	require.NoError(t, err)

	tm.db = &brokenDB{DB: db}

	ok, err := tm.Stop(ms(2000))
	assert.ErrorIs(t, err, errBroken)
	assert.False(t, ok)
	assert.Equal(t, models.Running, tm.Status())

	ok, err = tm.Discard()
	assert.ErrorIs(t, err, errBroken)
	assert.False(t, ok)
	assert.Equal(t, models.Running, tm.Status())

	tm.db = db

	_, err = tm.Stop(ms(2000))
	require.NoError(t, err)

	tm.db = &brokenDB{DB: db}

	_, err = tm.Save(nil, "")
	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, models.Stopped, tm.Status())
	assert.Empty(t, loadSessions(t, db))
}

func TestElapsed(t *testing.T) {
	db, _ := openDB(t)
	tm := newTimer(db)

	assert.Equal(t, time.Duration(0), tm.Elapsed(ms(5000)))

	_, err := tm.Start(ms(1000))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, tm.Elapsed(ms(4000)))
	assert.Equal(t, time.Duration(0), tm.Elapsed(ms(500)))
}
