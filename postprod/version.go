// ABOUTME: Monotonic version tracker for live snapshot de-duplication
// ABOUTME: Fires at most once per strictly increasing positive version
package postprod

import "sync"

// VersionTracker decides whether an observed snapshot version is news.
// The live channel may deliver duplicate or stale snapshots; only a
// strictly increasing positive version counts as a change.
type VersionTracker struct {
	mu   sync.Mutex
	last int
}

// NewVersionTracker starts with no version seen: the first positive
// version observed is a change.
func NewVersionTracker() *VersionTracker {
	return &VersionTracker{}
}

// Observe records v and reports whether it is a new, higher version.
// Zero, repeated, and decreasing values never report true.
func (t *VersionTracker) Observe(v int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v <= 0 || v <= t.last {
		return false
	}
	t.last = v
	return true
}

// Last returns the highest version observed so far, zero if none.
func (t *VersionTracker) Last() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}
