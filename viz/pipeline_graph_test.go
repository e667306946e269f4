// ABOUTME: Tests for pipeline DOT generation
package viz

import (
	"strings"
	"testing"
	"time"

	"github.com/studiokit/studioctl/models"
)

func TestGeneratePipelineDOT(t *testing.T) {
	due := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	job := &models.PostProdJob{
		Photo: &models.StreamSummary{
			RawState: "PHOTO_IN_PROGRESS",
			State:    models.StateInProgress,
			Version:  2,
			Editors: []models.Editor{
				{UID: "ed-1", DisplayName: "Ana", Role: models.RoleLead},
				{UID: "ed-2", Role: models.RoleAssist},
			},
			DraftDueAt: &due,
			Risk:       &models.Risk{AtRisk: true, Reason: "behind schedule"},
		},
	}

	dot := GeneratePipelineDOT("ev-1", job)

	for _, want := range []string{
		"digraph pipeline",
		"PHOTO_IN_PROGRESS",
		"lightblue",
		"Ana",
		"LEAD",
		"ed-2",
		"ASSIST",
		"AT RISK",
		"draft due Apr 10",
		"v2",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// Video has no job: placeholder node, no crash.
	if !strings.Contains(dot, "no job") {
		t.Errorf("missing placeholder for absent video stream:\n%s", dot)
	}
}

func TestGeneratePipelineDOTUnknownState(t *testing.T) {
	job := &models.PostProdJob{
		Video: &models.StreamSummary{RawState: "SOMETHING_NEW", State: models.StateUnknown},
	}
	dot := GeneratePipelineDOT("ev-2", job)
	if !strings.Contains(dot, "SOMETHING_NEW") {
		t.Errorf("raw state must be shown verbatim for unknown states:\n%s", dot)
	}
	if !strings.Contains(dot, "fillcolor=white") {
		t.Errorf("unknown state must fall back to white:\n%s", dot)
	}
}
