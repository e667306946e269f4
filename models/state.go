// ABOUTME: Closed enums for stream and salary workflow states
// ABOUTME: Parses the backend's free-form state strings into tagged variants
package models

import "strings"

// StreamState is the post-production workflow state of a single stream.
// The backend transmits free-form strings like "PHOTO_IN_PROGRESS" or
// "VIDEO_REVIEW"; parsing happens once at the decode boundary so the rest
// of the code can switch exhaustively instead of substring-matching.
type StreamState int

const (
	StateUnknown StreamState = iota
	StateUnassigned
	StateAssigned
	StateInProgress
	StateReview
	StateChangesRequested
	StateDone
	StateWaived
)

// stateNames maps the backend's state name, with any PHOTO_/VIDEO_
// qualifier removed, to the variant. "CHANGES" is a legacy alias still
// emitted by older backend builds.
var stateNames = map[string]StreamState{
	"UNASSIGNED":        StateUnassigned,
	"ASSIGNED":          StateAssigned,
	"IN_PROGRESS":       StateInProgress,
	"REVIEW":            StateReview,
	"CHANGES_REQUESTED": StateChangesRequested,
	"CHANGES":           StateChangesRequested,
	"DONE":              StateDone,
	"WAIVED":            StateWaived,
}

// ParseStreamState classifies a backend state string. Accepts both bare
// names ("REVIEW") and stream-qualified ones ("PHOTO_REVIEW"). The match
// is exact after stripping the qualifier, never a substring scan, so
// lookalike names ("NO_CHANGES", "UNREVIEWED") cannot misclassify.
// Strings that match no known variant map to StateUnknown; callers keep
// the raw string around for display rather than guessing.
func ParseStreamState(raw string) StreamState {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "PHOTO_")
	s = strings.TrimPrefix(s, "VIDEO_")
	if st, ok := stateNames[s]; ok {
		return st
	}
	return StateUnknown
}

// String returns the canonical wire form of the state.
func (s StreamState) String() string {
	switch s {
	case StateUnassigned:
		return "UNASSIGNED"
	case StateAssigned:
		return "ASSIGNED"
	case StateInProgress:
		return "IN_PROGRESS"
	case StateReview:
		return "REVIEW"
	case StateChangesRequested:
		return "CHANGES_REQUESTED"
	case StateDone:
		return "DONE"
	case StateWaived:
		return "WAIVED"
	}
	return "UNKNOWN"
}

// Terminal reports whether the stream has left the active workflow.
func (s StreamState) Terminal() bool {
	return s == StateDone || s == StateWaived
}

// SalaryStatus is the lifecycle tag on a salary run. Transitions are
// entirely server-enforced; the console only gates which buttons to show.
type SalaryStatus int

const (
	SalaryUnknown SalaryStatus = iota
	SalaryDraft
	SalaryPublished
	SalaryPaid
	SalaryClosed
	SalaryVoid
)

var salaryNames = map[string]SalaryStatus{
	"DRAFT":     SalaryDraft,
	"PUBLISHED": SalaryPublished,
	"PAID":      SalaryPaid,
	"CLOSED":    SalaryClosed,
	"VOID":      SalaryVoid,
}

// ParseSalaryStatus classifies a backend salary status string.
func ParseSalaryStatus(raw string) SalaryStatus {
	if st, ok := salaryNames[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return st
	}
	return SalaryUnknown
}

func (s SalaryStatus) String() string {
	switch s {
	case SalaryDraft:
		return "DRAFT"
	case SalaryPublished:
		return "PUBLISHED"
	case SalaryPaid:
		return "PAID"
	case SalaryClosed:
		return "CLOSED"
	case SalaryVoid:
		return "VOID"
	}
	return "UNKNOWN"
}
