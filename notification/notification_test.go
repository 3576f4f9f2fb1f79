package notification

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/store"
)

func newLog(t *testing.T) (*Log, store.DB) {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	l := NewLog(db)
	l.now = func() time.Time {
		return time.UnixMilli(42)
	}

	return l, db
}

func TestListSeedsDefaults(t *testing.T) {
	l, db := newLog(t)

	list, err := l.List()
	require.NoError(t, err)

	want := []models.Notification{
		{ID: "1", Text: DefaultTips[0], CreatedAt: 42},
		{ID: "2", Text: DefaultTips[1], CreatedAt: 42},
		{ID: "3", Text: DefaultTips[2], CreatedAt: 42},
	}

	if diff := cmp.Diff(want, list); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}

	_, found, err := db.Get(store.KeyNotifications)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestDismiss(t *testing.T) {
	l, _ := newLog(t)

	require.NoError(t, l.Dismiss("2"))

	list, err := l.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "3", list[1].ID)

	err = l.Dismiss("2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDismissAllKeepsLogEmpty(t *testing.T) {
	l, _ := newLog(t)

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, l.Dismiss(id))
	}

	list, err := l.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddUsesNaturalOrder(t *testing.T) {
	l, _ := newLog(t)

	for i := 0; i < 8; i++ {
		_, err := l.Add("slept well")
		require.NoError(t, err)
	}

	n, err := l.Add("last one")
	require.NoError(t, err)
	assert.Equal(t, "12", n.ID)

	list, err := l.List()
	require.NoError(t, err)
	require.Len(t, list, 12)

	ids := make([]string, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}

	assert.Equal(t, []string{
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	}, ids)
}
