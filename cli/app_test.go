// ABOUTME: Tests for shared command helpers
// ABOUTME: Date parsing, stream parsing, and event resolution
package cli

import (
	"testing"
	"time"

	"github.com/studiokit/studioctl/config"
	"github.com/studiokit/studioctl/models"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-09-15")
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.September || got.Day() != 15 {
		t.Errorf("unexpected date: %v", got)
	}

	got, err = parseDate("2026-09-15T10:30:00Z")
	if err != nil {
		t.Fatalf("parseDate RFC3339 failed: %v", err)
	}
	if got.Hour() != 10 {
		t.Errorf("expected hour 10, got %d", got.Hour())
	}

	got, err = parseDate("")
	if err != nil || got != nil {
		t.Errorf("empty date should be nil, nil; got %v, %v", got, err)
	}

	if _, err = parseDate("next tuesday"); err == nil {
		t.Error("expected error for garbage date")
	}
}

func TestParseStreamKind(t *testing.T) {
	if kind, err := parseStreamKind("photo"); err != nil || kind != models.StreamPhoto {
		t.Errorf("photo: got %v, %v", kind, err)
	}
	if kind, err := parseStreamKind("video"); err != nil || kind != models.StreamVideo {
		t.Errorf("video: got %v, %v", kind, err)
	}
	if _, err := parseStreamKind("audio"); err == nil {
		t.Error("expected error for unknown stream")
	}
	if _, err := parseStreamKind("PHOTO"); err == nil {
		t.Error("stream names are lowercase on the command line")
	}
}

func TestEventIDResolution(t *testing.T) {
	app := &App{Config: &config.Config{DefaultEvent: "evt_default"}}

	got, err := app.eventID("evt_flag")
	if err != nil || got != "evt_flag" {
		t.Errorf("flag should win: got %q, %v", got, err)
	}

	got, err = app.eventID("")
	if err != nil || got != "evt_default" {
		t.Errorf("default should apply: got %q, %v", got, err)
	}

	app.Config.DefaultEvent = ""
	if _, err = app.eventID(""); err == nil {
		t.Error("expected error with no event anywhere")
	}
}
