// ABOUTME: Tests for activity feed normalization
package models

import (
	"testing"
	"time"
)

func TestNormalizeActivity(t *testing.T) {
	v2 := 2
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	items := []ActivityItem{
		{Kind: "ASSIGN", At: base, Stream: "photo", ActorName: "Ana", Summary: "Assigned Ben as lead"},
		{Kind: "SUBMIT_DRAFT", At: base.Add(2 * time.Hour), Stream: "photo", Version: &v2},
		{Kind: "REVIEW", At: base.Add(time.Hour), Stream: "video", Summary: "Changes requested"},
	}

	entries := NormalizeActivity(items)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Newest first.
	if !entries[0].At.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("expected newest entry first, got %v", entries[0].At)
	}

	// Missing summary falls back to a label derived from kind.
	if entries[0].Label != "Submit draft" {
		t.Errorf("expected kind-derived label, got %q", entries[0].Label)
	}
	if entries[0].Version != 2 {
		t.Errorf("expected version 2, got %d", entries[0].Version)
	}
	if entries[0].Stream != StreamPhoto {
		t.Errorf("expected photo stream, got %q", entries[0].Stream)
	}

	// Actor name is prefixed onto the summary.
	last := entries[2]
	if last.Label != "Ana: Assigned Ben as lead" {
		t.Errorf("unexpected label %q", last.Label)
	}
}

func TestNormalizeActivityEmpty(t *testing.T) {
	if entries := NormalizeActivity(nil); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
