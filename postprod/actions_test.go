// ABOUTME: Tests for stream action gating
// ABOUTME: Covers lead/admin visibility across workflow states
package postprod

import (
	"testing"
	"time"

	"github.com/studiokit/studioctl/models"
)

func stream(raw string, editors ...models.Editor) *models.StreamSummary {
	return &models.StreamSummary{
		RawState: raw,
		State:    models.ParseStreamState(raw),
		Editors:  editors,
	}
}

func lead(uid string) models.Editor {
	return models.Editor{UID: uid, Role: models.RoleLead}
}

func TestLeadSubmitVisibility(t *testing.T) {
	viewer := Viewer{UID: "ed-1"}

	inProgress := stream("PHOTO_IN_PROGRESS", lead("ed-1"))
	actions := VisibleActions(viewer, inProgress)
	if !Has(actions, ActionSubmitDraft) {
		t.Error("lead must see submit on IN_PROGRESS")
	}
	if Has(actions, ActionStart) {
		t.Error("start must not be visible on IN_PROGRESS")
	}

	assigned := stream("PHOTO_ASSIGNED", lead("ed-1"))
	actions = VisibleActions(viewer, assigned)
	if Has(actions, ActionSubmitDraft) {
		t.Error("submit must not be visible on ASSIGNED")
	}
	if !Has(actions, ActionStart) {
		t.Error("lead must see start on ASSIGNED")
	}
}

func TestLeadSubmitOnChangesRequested(t *testing.T) {
	viewer := Viewer{UID: "ed-1"}
	s := stream("VIDEO_CHANGES", lead("ed-1"))
	if !Has(VisibleActions(viewer, s), ActionSubmitDraft) {
		t.Error("lead must see submit when changes were requested")
	}
}

func TestNonLeadSeesNoLeadActions(t *testing.T) {
	viewer := Viewer{UID: "ed-2"}
	s := stream("PHOTO_IN_PROGRESS",
		lead("ed-1"),
		models.Editor{UID: "ed-2", Role: models.RoleAssist},
	)
	actions := VisibleActions(viewer, s)
	if len(actions) != 0 {
		t.Errorf("assist viewer expected no actions, got %v", actions)
	}
}

func TestReviewGatedOnSubmission(t *testing.T) {
	admin := Viewer{UID: "adm", Admin: true}

	s := stream("PHOTO_REVIEW", lead("ed-1"))
	actions := VisibleActions(admin, s)
	if !Has(actions, ActionAwaitSubmission) {
		t.Error("admin must see disabled await-submission with no submission")
	}
	if Has(actions, ActionReview) {
		t.Error("review must not be enabled with no submission")
	}
	if ActionAwaitSubmission.Enabled() {
		t.Error("await-submission must be disabled")
	}

	// Any submission signal flips it to an enabled review action.
	s.Version = 1
	actions = VisibleActions(admin, s)
	if !Has(actions, ActionReview) {
		t.Error("review must be enabled once version > 0")
	}
	if Has(actions, ActionAwaitSubmission) {
		t.Error("await-submission must disappear once a submission exists")
	}

	s.Version = 0
	now := time.Now()
	s.LastSubmissionAt = &now
	if !Has(VisibleActions(admin, s), ActionReview) {
		t.Error("review must be enabled when last submission timestamp present")
	}

	s.LastSubmissionAt = nil
	s.Deliverables = map[string]string{"gallery": "https://example.com/g"}
	if !Has(VisibleActions(admin, s), ActionReview) {
		t.Error("review must be enabled when deliverables present")
	}
}

func TestAdminAssignAndManage(t *testing.T) {
	admin := Viewer{UID: "adm", Admin: true}

	unassigned := stream("VIDEO_UNASSIGNED")
	actions := VisibleActions(admin, unassigned)
	if !Has(actions, ActionAssign) {
		t.Error("admin must see assign on a stream with no editors")
	}
	if Has(actions, ActionReassign) || Has(actions, ActionWaive) {
		t.Error("manage actions need editors present")
	}

	assigned := stream("VIDEO_ASSIGNED", lead("ed-1"))
	actions = VisibleActions(admin, assigned)
	for _, want := range []Action{ActionExtendDue, ActionReassign, ActionWaive} {
		if !Has(actions, want) {
			t.Errorf("admin expected %s on assigned stream, got %v", want, actions)
		}
	}

	done := stream("VIDEO_DONE", lead("ed-1"))
	actions = VisibleActions(admin, done)
	if Has(actions, ActionReassign) || Has(actions, ActionWaive) || Has(actions, ActionExtendDue) {
		t.Errorf("no manage actions on DONE, got %v", actions)
	}
}

func TestNonAdminNonEditorSeesNothing(t *testing.T) {
	viewer := Viewer{UID: "outsider"}
	s := stream("PHOTO_REVIEW", lead("ed-1"))
	s.Version = 3
	if actions := VisibleActions(viewer, s); len(actions) != 0 {
		t.Errorf("outsider expected no actions, got %v", actions)
	}
}

func TestNilStream(t *testing.T) {
	if actions := VisibleActions(Viewer{Admin: true}, nil); actions != nil {
		t.Errorf("nil stream expected nil actions, got %v", actions)
	}
}
