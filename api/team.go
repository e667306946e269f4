// ABOUTME: Team roster, invite, and leave request endpoints
package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studiokit/studioctl/models"
)

// ListTeam fetches the full roster.
func (c *Client) ListTeam(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := c.get(ctx, "/team/members", &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddTeamMember creates a roster record and returns it with the
// server-assigned fields filled in.
func (c *Client) AddTeamMember(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	if member.Name == "" {
		return nil, &FieldError{Field: "name", Message: "name is required"}
	}
	var created models.TeamMember
	if err := c.post(ctx, "/team/members", member, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTeamMember pushes changed fields for a member.
func (c *Client) UpdateTeamMember(ctx context.Context, member *models.TeamMember) error {
	if member.UID == "" {
		return &FieldError{Field: "uid", Message: "member uid is required"}
	}
	return c.put(ctx, "/team/members/"+member.UID, member, nil)
}

// RemoveTeamMember deletes a roster record.
func (c *Client) RemoveTeamMember(ctx context.Context, uid string) error {
	return c.delete(ctx, "/team/members/"+uid)
}

// CreateInvite mints an invitation; the returned record carries the
// shareable link.
func (c *Client) CreateInvite(ctx context.Context, email, role string) (*models.Invite, error) {
	if email == "" {
		return nil, &FieldError{Field: "email", Message: "email is required"}
	}
	var invite models.Invite
	body := map[string]string{"email": email, "role": role}
	if err := c.post(ctx, "/team/invites", body, &invite); err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListInvites fetches pending invitations.
func (c *Client) ListInvites(ctx context.Context) ([]models.Invite, error) {
	var invites []models.Invite
	if err := c.get(ctx, "/team/invites", &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

// RevokeInvite cancels a pending invitation.
func (c *Client) RevokeInvite(ctx context.Context, id uuid.UUID) error {
	return c.delete(ctx, "/team/invites/"+id.String())
}

// ListLeaveRequests fetches leave requests, optionally filtered by
// status (pending, approved, rejected).
func (c *Client) ListLeaveRequests(ctx context.Context, status string) ([]models.LeaveRequest, error) {
	path := "/leave-requests"
	if status != "" {
		path += "?status=" + status
	}
	var requests []models.LeaveRequest
	if err := c.get(ctx, path, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// DecideLeave approves or rejects a leave request.
func (c *Client) DecideLeave(ctx context.Context, id uuid.UUID, approve bool, note string) error {
	decision := "reject"
	if approve {
		decision = "approve"
	}
	body := map[string]string{"decision": decision}
	if note != "" {
		body["note"] = note
	}
	return c.post(ctx, fmt.Sprintf("/leave-requests/%s/decide", id), body, nil)
}
