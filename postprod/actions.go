// ABOUTME: Pure state-to-action mapping for post-production streams
// ABOUTME: Computes which operations are valid for a viewer and stream state
package postprod

import "github.com/studiokit/studioctl/models"

// Action is one operation the console may offer on a stream. The mapping
// here only decides visibility; transition validation stays server-side.
type Action string

const (
	ActionAssign          Action = "assign"
	ActionReassign        Action = "reassign"
	ActionStart           Action = "start"
	ActionSubmitDraft     Action = "submit"
	ActionReview          Action = "review"
	ActionAwaitSubmission Action = "await-submission"
	ActionWaive           Action = "waive"
	ActionExtendDue       Action = "extend-due"
)

// Enabled reports whether the action is actionable. AwaitSubmission is a
// disabled placeholder shown while a review slot has nothing to review.
func (a Action) Enabled() bool {
	return a != ActionAwaitSubmission
}

// Viewer identifies the caller for gating purposes.
type Viewer struct {
	UID   string
	Admin bool
}

// VisibleActions computes the action set for one stream, in a stable
// order. Admin-only actions come first, lead actions after.
func VisibleActions(v Viewer, s *models.StreamSummary) []Action {
	if s == nil {
		return nil
	}

	var actions []Action
	isLead := s.IsLead(v.UID)

	if v.Admin {
		if len(s.Editors) == 0 && !s.State.Terminal() {
			actions = append(actions, ActionAssign)
		}
		if s.State == models.StateReview {
			if s.HasSubmission() {
				actions = append(actions, ActionReview)
			} else {
				actions = append(actions, ActionAwaitSubmission)
			}
		}
		if len(s.Editors) > 0 && s.State != models.StateDone {
			actions = append(actions, ActionExtendDue, ActionReassign, ActionWaive)
		}
	}

	if isLead {
		switch s.State {
		case models.StateAssigned:
			actions = append(actions, ActionStart)
		case models.StateInProgress, models.StateChangesRequested:
			actions = append(actions, ActionSubmitDraft)
		}
	}

	return actions
}

// Has reports whether the action set contains a.
func Has(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
