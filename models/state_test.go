// ABOUTME: Tests for stream and salary state parsing
// ABOUTME: Covers qualified names, bare names, and lookalike suffixes
package models

import "testing"

func TestParseStreamState(t *testing.T) {
	tests := []struct {
		raw  string
		want StreamState
	}{
		{"PHOTO_UNASSIGNED", StateUnassigned},
		{"PHOTO_ASSIGNED", StateAssigned},
		{"PHOTO_IN_PROGRESS", StateInProgress},
		{"VIDEO_REVIEW", StateReview},
		{"VIDEO_CHANGES", StateChangesRequested},
		{"PHOTO_CHANGES_REQUESTED", StateChangesRequested},
		{"VIDEO_DONE", StateDone},
		{"PHOTO_WAIVED", StateWaived},
		{"REVIEW", StateReview},
		{"done", StateDone},
		{"  IN_PROGRESS ", StateInProgress},
		{"", StateUnknown},
		{"SOMETHING_ELSE", StateUnknown},
	}

	for _, tt := range tests {
		if got := ParseStreamState(tt.raw); got != tt.want {
			t.Errorf("ParseStreamState(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseStreamStateLookalikes(t *testing.T) {
	// A name merely containing a variant word must not match. These were
	// exactly the false positives the old substring checks allowed.
	for _, raw := range []string{
		"PHOTO_UNREVIEWED",
		"VIDEO_NO_CHANGES",
		"REASSIGNED",
		"PHOTO_REASSIGNED",
		"UNDONE",
	} {
		if got := ParseStreamState(raw); got != StateUnknown {
			t.Errorf("ParseStreamState(%q) = %v, want StateUnknown", raw, got)
		}
	}
	// Legacy alias still emitted by older backend builds.
	if got := ParseStreamState("VIDEO_CHANGES"); got != StateChangesRequested {
		t.Errorf("VIDEO_CHANGES parsed as %v, want StateChangesRequested", got)
	}
}

func TestStreamStateTerminal(t *testing.T) {
	if !StateDone.Terminal() || !StateWaived.Terminal() {
		t.Error("DONE and WAIVED must be terminal")
	}
	if StateReview.Terminal() || StateInProgress.Terminal() {
		t.Error("REVIEW and IN_PROGRESS must not be terminal")
	}
}

func TestParseSalaryStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want SalaryStatus
	}{
		{"DRAFT", SalaryDraft},
		{"published", SalaryPublished},
		{"PAID", SalaryPaid},
		{"CLOSED", SalaryClosed},
		{"VOID", SalaryVoid},
		{"bogus", SalaryUnknown},
	}
	for _, tt := range tests {
		if got := ParseSalaryStatus(tt.raw); got != tt.want {
			t.Errorf("ParseSalaryStatus(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestStateStringRoundTrip(t *testing.T) {
	states := []StreamState{
		StateUnassigned, StateAssigned, StateInProgress,
		StateReview, StateChangesRequested, StateDone, StateWaived,
	}
	for _, s := range states {
		if got := ParseStreamState(s.String()); got != s {
			t.Errorf("ParseStreamState(%q) = %v, want %v", s.String(), got, s)
		}
	}
}
