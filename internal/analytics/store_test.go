package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	s.now = func() time.Time { return now }
	return s
}

func TestHashIP(t *testing.T) {
	s := newTestStore(t, time.Now())
	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestStats(t *testing.T) {
	now := time.Date(2025, 9, 11, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, now)
	ctx := context.Background()

	visits := []Visit{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "c", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}
	require.NoError(t, s.RecordEvent(ctx, Event{Kind: EventEmailCopy, Session: "s1"}))
	require.NoError(t, s.RecordEvent(ctx, Event{Kind: EventEmailCopy}))
	require.NoError(t, s.RecordEvent(ctx, Event{Kind: EventCarousel, Detail: "next"}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	assert.EqualValues(t, 2, stats.Events[EventEmailCopy])
	assert.EqualValues(t, 1, stats.Events[EventCarousel])

	require.Len(t, stats.RecentVisitors, 4)
	assert.True(t, stats.RecentVisitors[0].Timestamp.Equal(now.Add(-time.Hour)))
}

func TestRecordVisitDefaultsTimestamp(t *testing.T) {
	now := time.Date(2025, 9, 11, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, now)
	require.NoError(t, s.RecordVisit(context.Background(), Visit{HashedIP: "x", Path: "/"}))

	visits, err := s.RecentVisitors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.True(t, visits[0].Timestamp.Equal(now))
}

func TestCleanup(t *testing.T) {
	now := time.Date(2025, 9, 11, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, now)
	ctx := context.Background()

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "old", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "new", Timestamp: now.AddDate(0, -1, 0)}))

	n, err := s.Cleanup(ctx, DefaultRetention)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visits, err := s.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}

func TestOpenFile(t *testing.T) {
	s, err := Open(t.TempDir() + "/data/homepage.db")
	require.NoError(t, err)
	defer s.Close()
	assert.NoError(t, s.RecordEvent(context.Background(), Event{Kind: EventNav, Detail: "projects"}))
}
