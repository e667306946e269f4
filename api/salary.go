// ABOUTME: Salary run and payslip endpoints
// ABOUTME: Status transitions are server-enforced; the console only requests them
package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studiokit/studioctl/models"
)

// ListSalaryRuns fetches all salary runs.
func (c *Client) ListSalaryRuns(ctx context.Context) ([]models.SalaryRun, error) {
	var runs []models.SalaryRun
	if err := c.get(ctx, "/salaries/runs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetSalaryRun fetches one run.
func (c *Client) GetSalaryRun(ctx context.Context, id uuid.UUID) (*models.SalaryRun, error) {
	var run models.SalaryRun
	if err := c.get(ctx, "/salaries/runs/"+id.String(), &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// runTransition requests a status transition on a run. The backend
// rejects transitions invalid for the run's current status; the console
// surfaces its detail message unchanged.
func (c *Client) runTransition(ctx context.Context, id uuid.UUID, verb string) error {
	return c.post(ctx, fmt.Sprintf("/salaries/runs/%s/%s", id, verb), nil, nil)
}

// PublishSalaryRun publishes a draft run to the team.
func (c *Client) PublishSalaryRun(ctx context.Context, id uuid.UUID) error {
	return c.runTransition(ctx, id, "publish")
}

// MarkSalaryRunPaid marks a published run paid.
func (c *Client) MarkSalaryRunPaid(ctx context.Context, id uuid.UUID) error {
	return c.runTransition(ctx, id, "mark-paid")
}

// CloseSalaryRun closes a paid run.
func (c *Client) CloseSalaryRun(ctx context.Context, id uuid.UUID) error {
	return c.runTransition(ctx, id, "close")
}

// VoidSalaryRun voids a run.
func (c *Client) VoidSalaryRun(ctx context.Context, id uuid.UUID) error {
	return c.runTransition(ctx, id, "void")
}

// ListPayslips fetches the payslips of one run.
func (c *Client) ListPayslips(ctx context.Context, runID uuid.UUID) ([]models.Payslip, error) {
	var slips []models.Payslip
	if err := c.get(ctx, fmt.Sprintf("/salaries/runs/%s/payslips", runID), &slips); err != nil {
		return nil, err
	}
	return slips, nil
}
