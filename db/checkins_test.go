// ABOUTME: Tests for the offline check-in queue
// ABOUTME: Covers enqueue, flush bookkeeping, retry semantics, and pruning
package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setup(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestEnqueueAndListCheckins(t *testing.T) {
	db := setup(t)

	first := &QueuedCheckin{AssetTag: "CAM-001", MemberUID: "ed-1", Condition: "lens cap missing"}
	if err := EnqueueCheckin(db, first); err != nil {
		t.Fatalf("EnqueueCheckin failed: %v", err)
	}
	if first.ID == "" {
		t.Error("ID was not assigned")
	}
	if first.ScannedAt.IsZero() {
		t.Error("ScannedAt was not defaulted")
	}

	second := &QueuedCheckin{AssetTag: "TRI-044", ScannedAt: first.ScannedAt.Add(time.Minute)}
	if err := EnqueueCheckin(db, second); err != nil {
		t.Fatalf("EnqueueCheckin failed: %v", err)
	}

	queue, err := PendingCheckins(db)
	if err != nil {
		t.Fatalf("PendingCheckins failed: %v", err)
	}
	if len(queue) != 2 {
		t.Fatalf("expected 2 queued check-ins, got %d", len(queue))
	}
	// Oldest first.
	if queue[0].AssetTag != "CAM-001" || queue[1].AssetTag != "TRI-044" {
		t.Errorf("unexpected order: %s, %s", queue[0].AssetTag, queue[1].AssetTag)
	}
	if queue[0].Condition != "lens cap missing" {
		t.Errorf("condition not stored, got %q", queue[0].Condition)
	}
}

func TestEnqueueRequiresAssetTag(t *testing.T) {
	db := setup(t)
	if err := EnqueueCheckin(db, &QueuedCheckin{}); err == nil {
		t.Error("expected error for missing asset tag")
	}
}

func TestFlushedEntriesLeaveQueue(t *testing.T) {
	db := setup(t)

	c := &QueuedCheckin{AssetTag: "CAM-001"}
	if err := EnqueueCheckin(db, c); err != nil {
		t.Fatal(err)
	}
	if err := MarkCheckinFlushed(db, c.ID); err != nil {
		t.Fatalf("MarkCheckinFlushed failed: %v", err)
	}

	queue, err := PendingCheckins(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(queue) != 0 {
		t.Errorf("flushed entry must leave the pending queue, got %d", len(queue))
	}
}

func TestFailedEntriesAreRetried(t *testing.T) {
	db := setup(t)

	c := &QueuedCheckin{AssetTag: "CAM-001"}
	if err := EnqueueCheckin(db, c); err != nil {
		t.Fatal(err)
	}
	if err := MarkCheckinFailed(db, c.ID, "item already checked in"); err != nil {
		t.Fatalf("MarkCheckinFailed failed: %v", err)
	}

	queue, err := PendingCheckins(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(queue) != 1 {
		t.Fatalf("failed entry must stay pending for retry, got %d", len(queue))
	}
	if queue[0].Status != CheckinFailed {
		t.Errorf("expected failed status, got %q", queue[0].Status)
	}
	if queue[0].Error != "item already checked in" {
		t.Errorf("expected stored error, got %q", queue[0].Error)
	}
}

func TestMarkUnknownCheckin(t *testing.T) {
	db := setup(t)
	if err := MarkCheckinFlushed(db, "nope"); err != ErrCheckinNotFound {
		t.Errorf("expected ErrCheckinNotFound, got %v", err)
	}
}

func TestPruneFlushedCheckins(t *testing.T) {
	db := setup(t)

	old := &QueuedCheckin{AssetTag: "CAM-001", ScannedAt: time.Now().Add(-48 * time.Hour)}
	recent := &QueuedCheckin{AssetTag: "CAM-002"}
	for _, c := range []*QueuedCheckin{old, recent} {
		if err := EnqueueCheckin(db, c); err != nil {
			t.Fatal(err)
		}
		if err := MarkCheckinFlushed(db, c.ID); err != nil {
			t.Fatal(err)
		}
	}

	pruned, err := PruneFlushedCheckins(db, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("PruneFlushedCheckins failed: %v", err)
	}
	if pruned != 1 {
		t.Errorf("expected 1 pruned entry, got %d", pruned)
	}
}

func TestFlushState(t *testing.T) {
	db := setup(t)

	state, err := GetFlushState(db, "checkins")
	if err != nil {
		t.Fatal(err)
	}
	if state != nil {
		t.Fatal("expected nil state before first flush")
	}

	if err := UpdateFlushState(db, "checkins", "ok", ""); err != nil {
		t.Fatalf("UpdateFlushState failed: %v", err)
	}
	state, err = GetFlushState(db, "checkins")
	if err != nil {
		t.Fatal(err)
	}
	if state == nil || state.Status != "ok" {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.LastFlushAt == nil {
		t.Error("expected last flush time")
	}

	if err := UpdateFlushState(db, "checkins", "error", "backend unreachable"); err != nil {
		t.Fatal(err)
	}
	state, _ = GetFlushState(db, "checkins")
	if state.Error != "backend unreachable" {
		t.Errorf("expected stored error, got %q", state.Error)
	}
}
