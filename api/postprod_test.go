// ABOUTME: Tests for post-production request builders and endpoints
// ABOUTME: Covers review payload translation and pre-network validation
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/studioctl/models"
)

func TestReviewPayloadApprove(t *testing.T) {
	req := &ReviewRequest{Decision: DecisionApproveFinal}
	payload, err := req.Payload()
	require.NoError(t, err)
	assert.Equal(t, "approve", payload.Decision)
	assert.Empty(t, payload.ChangeList)
}

func TestReviewPayloadChanges(t *testing.T) {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	req := &ReviewRequest{
		Decision:   DecisionRequestChanges,
		ChangeList: []string{"a", "b"},
		NextDueAt:  &due,
	}
	payload, err := req.Payload()
	require.NoError(t, err)
	assert.Equal(t, "changes", payload.Decision)
	assert.Equal(t, []string{"a", "b"}, payload.ChangeList)
	require.NotNil(t, payload.NextDueAt)
	assert.True(t, payload.NextDueAt.Equal(due))
}

func TestReviewPayloadWireFieldNames(t *testing.T) {
	req := &ReviewRequest{Decision: DecisionRequestChanges, ChangeList: []string{"a"}}
	payload, err := req.Payload()
	require.NoError(t, err)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"decision": "changes", "change_list": ["a"]}`, string(raw))
}

func TestReviewPayloadRejectsEmptyChangeList(t *testing.T) {
	req := &ReviewRequest{Decision: DecisionRequestChanges}
	_, err := req.Payload()
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "change_list", fieldErr.Field)
}

func TestReviewPayloadRejectsUnknownDecision(t *testing.T) {
	req := &ReviewRequest{Decision: "MAYBE"}
	_, err := req.Payload()
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "decision", fieldErr.Field)
}

func TestParseChangeList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a\nb", []string{"a", "b"}},
		{"a\n\n\nb\n", []string{"a", "b"}},
		{"  spaced  \n\ttabbed\t", []string{"spaced", "tabbed"}},
		{"\n\n", nil},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseChangeList(tt.input), "input %q", tt.input)
	}
}

func TestAssignValidation(t *testing.T) {
	draft := time.Now().Add(72 * time.Hour)
	final := draft.Add(72 * time.Hour)

	tests := []struct {
		name      string
		req       AssignRequest
		wantField string
	}{
		{"missing lead", AssignRequest{DraftDueAt: &draft, FinalDueAt: &final}, "lead_uid"},
		{"blank lead", AssignRequest{LeadUID: "   ", DraftDueAt: &draft, FinalDueAt: &final}, "lead_uid"},
		{"missing draft due", AssignRequest{LeadUID: "ed-1", FinalDueAt: &final}, "draft_due_at"},
		{"missing final due", AssignRequest{LeadUID: "ed-1", DraftDueAt: &draft}, "final_due_at"},
		{"complete", AssignRequest{LeadUID: "ed-1", DraftDueAt: &draft, FinalDueAt: &final}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestAssignRejectsBeforeNetwork(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.Assign(context.Background(), "ev-1", models.StreamPhoto, &AssignRequest{})

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "lead_uid", fieldErr.Field)
	assert.Equal(t, 0, hits, "invalid assign must never reach the backend")
}

func TestReassignRequiresDueDates(t *testing.T) {
	// Due dates are required on reassign as well, not only first assign.
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.Reassign(context.Background(), "ev-1", models.StreamVideo, &AssignRequest{LeadUID: "ed-2"})

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "draft_due_at", fieldErr.Field)
	assert.Equal(t, 0, hits)
}

func TestOverviewDecodesAndParsesStates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/ev-9/postprod/overview", r.URL.Path)
		w.Write([]byte(`{
			"photo": {"state": "PHOTO_IN_PROGRESS", "version": 2,
				"editors": [{"uid": "ed-1", "role": "LEAD"}]},
			"video": {"state": "VIDEO_REVIEW", "version": 0, "editors": []},
			"activity": [{"kind": "ASSIGN", "at": "2026-03-01T10:00:00Z", "stream": "photo"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	job, err := client.Overview(context.Background(), "ev-9")
	require.NoError(t, err)

	require.NotNil(t, job.Photo)
	assert.Equal(t, models.StateInProgress, job.Photo.State)
	assert.Equal(t, "PHOTO_IN_PROGRESS", job.Photo.RawState)
	assert.Equal(t, 2, job.Photo.Version)
	assert.True(t, job.Photo.IsLead("ed-1"))

	require.NotNil(t, job.Video)
	assert.Equal(t, models.StateReview, job.Video.State)
	assert.False(t, job.Video.HasSubmission())

	require.Len(t, job.Activity, 1)
	assert.Equal(t, "ASSIGN", job.Activity[0].Kind)
}

func TestReviewSendsTranslatedPayload(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/ev-1/postprod/video/review", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	req := &ReviewRequest{
		Decision:   DecisionRequestChanges,
		ChangeList: ParseChangeList("fix color grade\n\ntrim intro\n"),
	}
	require.NoError(t, client.Review(context.Background(), "ev-1", models.StreamVideo, req))

	assert.Equal(t, "changes", body["decision"])
	assert.Equal(t, []interface{}{"fix color grade", "trim intro"}, body["change_list"])
}

func TestSubmitDraftRequiresDeliverables(t *testing.T) {
	client := NewClient("http://backend.invalid", nil)
	err := client.SubmitDraft(context.Background(), "ev-1", models.StreamPhoto, &SubmitRequest{})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "deliverables", fieldErr.Field)
}

func TestExtendDueRequiresADate(t *testing.T) {
	client := NewClient("http://backend.invalid", nil)
	err := client.ExtendDue(context.Background(), "ev-1", models.StreamPhoto, &ExtendDueRequest{})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *FieldError, got %v", err)
	}
}
