// ABOUTME: AI-suggested assignee endpoint for the assignment form
package api

import (
	"context"
	"fmt"

	"github.com/studiokit/studioctl/models"
)

// SuggestAssignees asks the backend for ranked editor suggestions for a
// stream. The suggestion service is best-effort; callers treat failures
// as an empty list, not an error dialog.
func (c *Client) SuggestAssignees(ctx context.Context, eventID string, stream models.StreamKind) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	path := fmt.Sprintf("/events/%s/postprod/%s/suggest-assignees", eventID, stream)
	if err := c.get(ctx, path, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}
