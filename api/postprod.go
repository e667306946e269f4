// ABOUTME: Post-production endpoints: overview, activity, and stream mutations
// ABOUTME: Request builders validate client-side and translate to wire vocabulary
package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studiokit/studioctl/models"
)

// Overview fetches the aggregated read model of an event's two streams
// plus its activity feed.
func (c *Client) Overview(ctx context.Context, eventID string) (*models.PostProdJob, error) {
	var job models.PostProdJob
	if err := c.get(ctx, fmt.Sprintf("/events/%s/postprod/overview", eventID), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// InitJob creates the post-production job for an event.
func (c *Client) InitJob(ctx context.Context, eventID string) error {
	return c.post(ctx, fmt.Sprintf("/events/%s/postprod/init", eventID), nil, nil)
}

// Activity fetches the event's full activity feed.
func (c *Client) Activity(ctx context.Context, eventID string) ([]models.ActivityItem, error) {
	var items []models.ActivityItem
	if err := c.get(ctx, fmt.Sprintf("/events/%s/postprod/activity", eventID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AssignRequest collects editors and due dates for assign or reassign.
type AssignRequest struct {
	LeadUID    string     `json:"lead_uid"`
	AssistUIDs []string   `json:"assist_uids,omitempty"`
	DraftDueAt *time.Time `json:"draft_due_at"`
	FinalDueAt *time.Time `json:"final_due_at"`
	Note       string     `json:"note,omitempty"`
}

// Validate enforces the client-side rules: a lead and both due dates are
// required, on reassign as much as on first assign. Uniqueness of the
// lead and due-date ordering stay backend-owned.
func (r *AssignRequest) Validate() error {
	if strings.TrimSpace(r.LeadUID) == "" {
		return &FieldError{Field: "lead_uid", Message: "lead editor is required"}
	}
	if r.DraftDueAt == nil {
		return &FieldError{Field: "draft_due_at", Message: "draft due date is required"}
	}
	if r.FinalDueAt == nil {
		return &FieldError{Field: "final_due_at", Message: "final due date is required"}
	}
	return nil
}

// Assign assigns editors to a stream. Validation failures surface as
// *FieldError before any network call.
func (c *Client) Assign(ctx context.Context, eventID string, stream models.StreamKind, req *AssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.post(ctx, fmt.Sprintf("/events/%s/postprod/%s/assign", eventID, stream), req, nil)
}

// Reassign replaces a stream's editors. Same validation as Assign.
func (c *Client) Reassign(ctx context.Context, eventID string, stream models.StreamKind, req *AssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.post(ctx, fmt.Sprintf("/events/%s/postprod/%s/reassign", eventID, stream), req, nil)
}

// Start marks the stream in progress. Lead-only; the backend enforces.
func (c *Client) Start(ctx context.Context, eventID string, stream models.StreamKind) error {
	return c.post(ctx, fmt.Sprintf("/events/%s/postprod/%s/start", eventID, stream), nil, nil)
}

// SubmitRequest is a versioned manifest: what is delivered and what
// changed since the previous version.
type SubmitRequest struct {
	Deliverables map[string]string `json:"deliverables"`
	ChangeNote   string            `json:"change_note,omitempty"`
}

// SubmitDraft submits the lead's manifest for review.
func (c *Client) SubmitDraft(ctx context.Context, eventID string, stream models.StreamKind, req *SubmitRequest) error {
	if len(req.Deliverables) == 0 {
		return &FieldError{Field: "deliverables", Message: "at least one deliverable is required"}
	}
	return c.post(ctx, fmt.Sprintf("/events/%s/postprod/%s/submit", eventID, stream), req, nil)
}

// Decision is the console's review vocabulary.
type Decision string

const (
	DecisionApproveFinal   Decision = "APPROVE_FINAL"
	DecisionRequestChanges Decision = "REQUEST_CHANGES"
)

// ReviewRequest is a review decision in console vocabulary; translation
// to the wire form happens at submit time.
type ReviewRequest struct {
	Decision   Decision
	ChangeList []string
	NextDueAt  *time.Time
}

// ReviewPayload is the backend's wire shape.
type ReviewPayload struct {
	Decision   string     `json:"decision"`
	ChangeList []string   `json:"change_list,omitempty"`
	NextDueAt  *time.Time `json:"next_due_at,omitempty"`
}

// Payload translates the console vocabulary to the backend's: approve or
// changes, with the change list only on a changes decision.
func (r *ReviewRequest) Payload() (ReviewPayload, error) {
	switch r.Decision {
	case DecisionApproveFinal:
		return ReviewPayload{Decision: "approve", NextDueAt: r.NextDueAt}, nil
	case DecisionRequestChanges:
		if len(r.ChangeList) == 0 {
			return ReviewPayload{}, &FieldError{Field: "change_list", Message: "at least one requested change is required"}
		}
		return ReviewPayload{Decision: "changes", ChangeList: r.ChangeList, NextDueAt: r.NextDueAt}, nil
	}
	return ReviewPayload{}, &FieldError{Field: "decision", Message: fmt.Sprintf("unknown decision %q", r.Decision)}
}

// Review submits a review decision on a stream's current submission.
func (c *Client) Review(ctx context.Context, eventID string, stream models.StreamKind, req *ReviewRequest) error {
	payload, err := req.Payload()
	if err != nil {
		return err
	}
	return c.post(ctx, fmt.Sprintf("/events/%s/postprod/%s/review", eventID, stream), payload, nil)
}

// Waive closes a stream without deliverables.
func (c *Client) Waive(ctx context.Context, eventID string, stream models.StreamKind, reason string) error {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	return c.post(ctx, fmt.Sprintf("/events/%s/postprod/%s/waive", eventID, stream), body, nil)
}

// ExtendDue pushes a stream's due dates out.
type ExtendDueRequest struct {
	DraftDueAt *time.Time `json:"draft_due_at,omitempty"`
	FinalDueAt *time.Time `json:"final_due_at,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}

func (c *Client) ExtendDue(ctx context.Context, eventID string, stream models.StreamKind, req *ExtendDueRequest) error {
	if req.DraftDueAt == nil && req.FinalDueAt == nil {
		return &FieldError{Field: "due", Message: "at least one due date is required"}
	}
	return c.post(ctx, fmt.Sprintf("/events/%s/postprod/%s/extend-due", eventID, stream), req, nil)
}

// ParseChangeList splits free-text review input into one change per
// line, dropping blank lines.
func ParseChangeList(text string) []string {
	var changes []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			changes = append(changes, line)
		}
	}
	return changes
}
