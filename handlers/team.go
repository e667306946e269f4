// ABOUTME: Team and salary MCP tool handlers
// ABOUTME: Implements list_team and list_salary_runs tools
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiokit/studioctl/api"
)

type TeamHandlers struct {
	client *api.Client
}

func NewTeamHandlers(client *api.Client) *TeamHandlers {
	return &TeamHandlers{client: client}
}

type ListTeamInput struct {
	Role string `json:"role,omitempty" jsonschema:"Filter by role name"`
}

type TeamMemberOutput struct {
	UID    string   `json:"uid"`
	Name   string   `json:"name"`
	Email  string   `json:"email,omitempty"`
	Role   string   `json:"role"`
	Skills []string `json:"skills,omitempty"`
}

type ListTeamOutput struct {
	Members []TeamMemberOutput `json:"members"`
}

func (h *TeamHandlers) ListTeam(ctx context.Context, request *mcp.CallToolRequest, input ListTeamInput) (*mcp.CallToolResult, ListTeamOutput, error) {
	members, err := h.client.ListTeam(ctx)
	if err != nil {
		return nil, ListTeamOutput{}, err
	}

	out := ListTeamOutput{}
	for _, m := range members {
		if input.Role != "" && m.Role != input.Role {
			continue
		}
		out.Members = append(out.Members, TeamMemberOutput{
			UID:    m.UID,
			Name:   m.Name,
			Email:  m.Email,
			Role:   m.Role,
			Skills: m.Skills,
		})
	}
	return nil, out, nil
}

type ListSalaryRunsInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by run status: DRAFT, PUBLISHED, PAID, CLOSED, VOID"`
}

type SalaryRunOutput struct {
	ID         string `json:"id"`
	Period     string `json:"period"`
	Status     string `json:"status"`
	TotalCents int64  `json:"total_cents"`
	Currency   string `json:"currency"`
}

type ListSalaryRunsOutput struct {
	Runs []SalaryRunOutput `json:"runs"`
}

func (h *TeamHandlers) ListSalaryRuns(ctx context.Context, request *mcp.CallToolRequest, input ListSalaryRunsInput) (*mcp.CallToolResult, ListSalaryRunsOutput, error) {
	runs, err := h.client.ListSalaryRuns(ctx)
	if err != nil {
		return nil, ListSalaryRunsOutput{}, err
	}

	out := ListSalaryRunsOutput{}
	for _, r := range runs {
		if input.Status != "" && r.RawStatus != input.Status {
			continue
		}
		out.Runs = append(out.Runs, SalaryRunOutput{
			ID:         r.ID.String(),
			Period:     r.Period,
			Status:     r.RawStatus,
			TotalCents: r.TotalCents,
			Currency:   r.Currency,
		})
	}
	return nil, out, nil
}
