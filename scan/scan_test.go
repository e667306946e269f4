// ABOUTME: Tests for gear tag decoding and the wedge reader
package scan

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStructuredTag(t *testing.T) {
	tag, err := Parse("ST1|CAM-001|Canon R5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tag.AssetTag != "CAM-001" {
		t.Errorf("expected CAM-001, got %q", tag.AssetTag)
	}
	if tag.Name != "Canon R5" {
		t.Errorf("expected name, got %q", tag.Name)
	}
}

func TestParseStructuredTagWithoutName(t *testing.T) {
	tag, err := Parse("ST1|TRI-044")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tag.AssetTag != "TRI-044" || tag.Name != "" {
		t.Errorf("unexpected tag %+v", tag)
	}
}

func TestParseBareTagFallback(t *testing.T) {
	tests := []struct {
		payload string
		want    string
	}{
		{"CAM-001", "CAM-001"},
		{"cam-001", "CAM-001"},
		{"  LENS-24A ", "LENS-24A"},
	}
	for _, tt := range tests {
		tag, err := Parse(tt.payload)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.payload, err)
			continue
		}
		if tag.AssetTag != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.payload, tag.AssetTag, tt.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, payload := range []string{
		"",
		"hello world",
		"ST1|",
		"ST1||Canon R5",
		"ST1|not a tag|x",
		"https://example.com/item/1",
	} {
		if _, err := Parse(payload); !errors.Is(err, ErrUnreadable) {
			t.Errorf("Parse(%q) expected ErrUnreadable, got %v", payload, err)
		}
	}
}

func TestReadAll(t *testing.T) {
	input := "ST1|CAM-001|Canon R5\n\ngarbage line\nTRI-044\n"

	var results []Result
	err := ReadAll(strings.NewReader(input), func(r Result) {
		results = append(results, r)
	})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	// Blank line skipped, garbage reported, two good scans decoded.
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Err != nil || results[0].Tag.AssetTag != "CAM-001" {
		t.Errorf("unexpected first result %+v", results[0])
	}
	if results[1].Err == nil {
		t.Error("garbage line must report a decode error")
	}
	if results[1].Raw != "garbage line" {
		t.Errorf("raw payload must be preserved, got %q", results[1].Raw)
	}
	if results[2].Err != nil || results[2].Tag.AssetTag != "TRI-044" {
		t.Errorf("unexpected third result %+v", results[2])
	}
}
