// ABOUTME: Data-intake submission and receipt verification endpoints
package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studiokit/studioctl/models"
)

// ListDataSubmissions fetches intake batches, optionally filtered by
// status.
func (c *Client) ListDataSubmissions(ctx context.Context, status string) ([]models.DataSubmission, error) {
	path := "/data-submissions"
	if status != "" {
		path += "?status=" + status
	}
	var subs []models.DataSubmission
	if err := c.get(ctx, path, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// DecideDataSubmission approves or rejects an intake batch.
func (c *Client) DecideDataSubmission(ctx context.Context, id uuid.UUID, approve bool, note string) error {
	decision := "reject"
	if approve {
		decision = "approve"
	}
	body := map[string]string{"decision": decision}
	if note != "" {
		body["note"] = note
	}
	return c.post(ctx, fmt.Sprintf("/data-submissions/%s/decide", id), body, nil)
}

// ListReceiptReviews fetches expense receipts awaiting verification.
func (c *Client) ListReceiptReviews(ctx context.Context, status string) ([]models.ReceiptReview, error) {
	path := "/reviews/receipts"
	if status != "" {
		path += "?status=" + status
	}
	var reviews []models.ReceiptReview
	if err := c.get(ctx, path, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// VerifyReceipt marks a receipt verified or rejected.
func (c *Client) VerifyReceipt(ctx context.Context, id uuid.UUID, verified bool, note string) error {
	decision := "reject"
	if verified {
		decision = "verify"
	}
	body := map[string]string{"decision": decision}
	if note != "" {
		body["note"] = note
	}
	return c.post(ctx, fmt.Sprintf("/reviews/receipts/%s/decide", id), body, nil)
}
