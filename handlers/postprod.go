// ABOUTME: Post-production MCP tool handlers
// ABOUTME: Implements get_postprod_overview, assign_editors, and review_submission tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiokit/studioctl/api"
	"github.com/studiokit/studioctl/models"
)

type PostProdHandlers struct {
	client *api.Client
}

func NewPostProdHandlers(client *api.Client) *PostProdHandlers {
	return &PostProdHandlers{client: client}
}

type OverviewInput struct {
	EventID string `json:"event_id" jsonschema:"Event identifier (required)"`
}

type StreamOutput struct {
	State        string   `json:"state"`
	Version      int      `json:"version"`
	LeadUID      string   `json:"lead_uid,omitempty"`
	EditorUIDs   []string `json:"editor_uids,omitempty"`
	DraftDueAt   string   `json:"draft_due_at,omitempty"`
	FinalDueAt   string   `json:"final_due_at,omitempty"`
	AtRisk       bool     `json:"at_risk,omitempty"`
	RiskReason   string   `json:"risk_reason,omitempty"`
	HasSubmitted bool     `json:"has_submitted"`
}

type OverviewOutput struct {
	Photo *StreamOutput `json:"photo,omitempty"`
	Video *StreamOutput `json:"video,omitempty"`
}

func streamOutput(s *models.StreamSummary) *StreamOutput {
	if s == nil {
		return nil
	}
	out := &StreamOutput{
		State:        s.RawState,
		Version:      s.Version,
		HasSubmitted: s.HasSubmission(),
	}
	if lead, ok := s.Lead(); ok {
		out.LeadUID = lead.UID
	}
	for _, e := range s.Editors {
		out.EditorUIDs = append(out.EditorUIDs, e.UID)
	}
	if s.DraftDueAt != nil {
		out.DraftDueAt = s.DraftDueAt.Format(time.RFC3339)
	}
	if s.FinalDueAt != nil {
		out.FinalDueAt = s.FinalDueAt.Format(time.RFC3339)
	}
	if s.Risk != nil {
		out.AtRisk = s.Risk.AtRisk
		out.RiskReason = s.Risk.Reason
	}
	return out
}

func (h *PostProdHandlers) GetOverview(ctx context.Context, request *mcp.CallToolRequest, input OverviewInput) (*mcp.CallToolResult, OverviewOutput, error) {
	if input.EventID == "" {
		return nil, OverviewOutput{}, fmt.Errorf("event_id is required")
	}
	job, err := h.client.Overview(ctx, input.EventID)
	if err != nil {
		return nil, OverviewOutput{}, err
	}
	return nil, OverviewOutput{
		Photo: streamOutput(job.Photo),
		Video: streamOutput(job.Video),
	}, nil
}

type AssignInput struct {
	EventID    string   `json:"event_id" jsonschema:"Event identifier (required)"`
	Stream     string   `json:"stream" jsonschema:"Stream to assign: photo or video"`
	LeadUID    string   `json:"lead_uid" jsonschema:"UID of the lead editor (required)"`
	AssistUIDs []string `json:"assist_uids,omitempty" jsonschema:"UIDs of assistant editors"`
	DraftDueAt string   `json:"draft_due_at" jsonschema:"Draft due date, RFC3339 (required)"`
	FinalDueAt string   `json:"final_due_at" jsonschema:"Final due date, RFC3339 (required)"`
	Reassign   bool     `json:"reassign,omitempty" jsonschema:"Replace the current editors instead of first assignment"`
}

type AssignOutput struct {
	Status string `json:"status"`
}

func parseStream(raw string) (models.StreamKind, error) {
	switch models.StreamKind(raw) {
	case models.StreamPhoto, models.StreamVideo:
		return models.StreamKind(raw), nil
	}
	return "", fmt.Errorf("stream must be photo or video, got %q", raw)
}

func (h *PostProdHandlers) AssignEditors(ctx context.Context, request *mcp.CallToolRequest, input AssignInput) (*mcp.CallToolResult, AssignOutput, error) {
	stream, err := parseStream(input.Stream)
	if err != nil {
		return nil, AssignOutput{}, err
	}

	req := &api.AssignRequest{LeadUID: input.LeadUID, AssistUIDs: input.AssistUIDs}
	if input.DraftDueAt != "" {
		due, err := time.Parse(time.RFC3339, input.DraftDueAt)
		if err != nil {
			return nil, AssignOutput{}, fmt.Errorf("invalid draft_due_at: %w", err)
		}
		req.DraftDueAt = &due
	}
	if input.FinalDueAt != "" {
		due, err := time.Parse(time.RFC3339, input.FinalDueAt)
		if err != nil {
			return nil, AssignOutput{}, fmt.Errorf("invalid final_due_at: %w", err)
		}
		req.FinalDueAt = &due
	}

	if input.Reassign {
		err = h.client.Reassign(ctx, input.EventID, stream, req)
	} else {
		err = h.client.Assign(ctx, input.EventID, stream, req)
	}
	if err != nil {
		return nil, AssignOutput{}, err
	}
	return nil, AssignOutput{Status: "assigned"}, nil
}

type ReviewInput struct {
	EventID   string   `json:"event_id" jsonschema:"Event identifier (required)"`
	Stream    string   `json:"stream" jsonschema:"Stream under review: photo or video"`
	Approve   bool     `json:"approve" jsonschema:"True to approve the final, false to request changes"`
	Changes   []string `json:"changes,omitempty" jsonschema:"Requested changes, one per entry (required unless approving)"`
	NextDueAt string   `json:"next_due_at,omitempty" jsonschema:"Next due date for the revision, RFC3339"`
}

type ReviewOutput struct {
	Decision string `json:"decision"`
}

func (h *PostProdHandlers) ReviewSubmission(ctx context.Context, request *mcp.CallToolRequest, input ReviewInput) (*mcp.CallToolResult, ReviewOutput, error) {
	stream, err := parseStream(input.Stream)
	if err != nil {
		return nil, ReviewOutput{}, err
	}

	req := &api.ReviewRequest{Decision: api.DecisionRequestChanges, ChangeList: input.Changes}
	if input.Approve {
		req.Decision = api.DecisionApproveFinal
	}
	if input.NextDueAt != "" {
		due, err := time.Parse(time.RFC3339, input.NextDueAt)
		if err != nil {
			return nil, ReviewOutput{}, fmt.Errorf("invalid next_due_at: %w", err)
		}
		req.NextDueAt = &due
	}

	if err := h.client.Review(ctx, input.EventID, stream, req); err != nil {
		return nil, ReviewOutput{}, err
	}

	decision := "changes"
	if input.Approve {
		decision = "approve"
	}
	return nil, ReviewOutput{Decision: decision}, nil
}
