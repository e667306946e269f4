// ABOUTME: Activity feed entries and client-side normalization
// ABOUTME: Flattens heterogeneous backend log entries into one timeline shape
package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ActivityItem is one heterogeneous log entry from the overview feed.
// kind varies by event type and metadata is backend-defined.
type ActivityItem struct {
	Kind      string            `json:"kind"`
	At        time.Time         `json:"at"`
	Stream    string            `json:"stream,omitempty"`
	Version   *int              `json:"version,omitempty"`
	Summary   string            `json:"summary,omitempty"`
	ActorName string            `json:"actor_name,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// TimelineEntry is the normalized shape the console renders.
type TimelineEntry struct {
	At      time.Time
	Label   string
	Detail  string
	Stream  StreamKind
	Version int
}

// NormalizeActivity flattens feed items into timeline entries, newest
// first. Entries without a summary get a label derived from their kind;
// unknown stream tags are carried as photo-less entries rather than
// dropped.
func NormalizeActivity(items []ActivityItem) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(items))
	for _, it := range items {
		e := TimelineEntry{At: it.At, Detail: it.Summary}
		if it.Version != nil {
			e.Version = *it.Version
		}
		switch strings.ToLower(it.Stream) {
		case string(StreamPhoto):
			e.Stream = StreamPhoto
		case string(StreamVideo):
			e.Stream = StreamVideo
		}
		label := it.Summary
		if label == "" {
			label = kindLabel(it.Kind)
		}
		if it.ActorName != "" {
			label = fmt.Sprintf("%s: %s", it.ActorName, label)
		}
		e.Label = label
		entries = append(entries, e)
	}
	// Feed order from the backend is not guaranteed; render newest first.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.After(entries[j].At)
	})
	return entries
}

// kindLabel turns an event kind like "SUBMIT_DRAFT" into "Submit draft".
func kindLabel(kind string) string {
	if kind == "" {
		return "Activity"
	}
	words := strings.Split(strings.ToLower(kind), "_")
	if len(words[0]) > 0 {
		words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	}
	return strings.Join(words, " ")
}
