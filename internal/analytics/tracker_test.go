package analytics

import (
	"context"
	"testing"
	"time"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { tr.Close() })
	return tr
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	tr := newTestTracker(t)
	a := tr.HashIP("203.0.113.7")
	if a != tr.HashIP("203.0.113.7") {
		t.Fatal("hash not stable")
	}
	if a == "203.0.113.7" || len(a) != 16 {
		t.Fatalf("unexpected hash %q", a)
	}
	if a == tr.HashIP("203.0.113.8") {
		t.Fatal("different addresses hashed equal")
	}
}

func TestStats(t *testing.T) {
	tr := newTestTracker(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	record := func(at time.Time, ip string) {
		tr.now = func() time.Time { return at }
		if err := tr.Record(ctx, ip, "test-agent", "/"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	record(now.Add(-30*24*time.Hour), "198.51.100.1")
	record(now.Add(-3*24*time.Hour), "198.51.100.1")
	record(now.Add(-time.Hour), "198.51.100.2")
	record(now.Add(-time.Minute), "198.51.100.2")

	tr.now = func() time.Time { return now }
	stats, err := tr.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVisits != 4 {
		t.Errorf("TotalVisits = %d, want 4", stats.TotalVisits)
	}
	if stats.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors = %d, want 2", stats.UniqueVisitors)
	}
	if stats.VisitsToday != 2 {
		t.Errorf("VisitsToday = %d, want 2", stats.VisitsToday)
	}
	if stats.VisitsThisWeek != 3 {
		t.Errorf("VisitsThisWeek = %d, want 3", stats.VisitsThisWeek)
	}
	if len(stats.RecentVisits) != 4 {
		t.Fatalf("RecentVisits = %d, want 4", len(stats.RecentVisits))
	}
	for _, v := range stats.RecentVisits {
		if v.HashedIP == "198.51.100.1" || v.HashedIP == "198.51.100.2" {
			t.Fatal("raw address stored")
		}
	}
}

func TestCleanup(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tr.now = func() time.Time { return now.Add(-400 * 24 * time.Hour) }
	if err := tr.Record(ctx, "192.0.2.1", "", "/"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	tr.now = func() time.Time { return now }
	if err := tr.Record(ctx, "192.0.2.1", "", "/"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	removed, err := tr.Cleanup(ctx, 365*24*time.Hour)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
}

func TestRecordAsync(t *testing.T) {
	tr := newTestTracker(t)
	tr.RecordAsync("192.0.2.9", "agent", "/")
	tr.Wait()

	stats, err := tr.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVisits != 1 {
		t.Fatalf("TotalVisits = %d, want 1", stats.TotalVisits)
	}
}
