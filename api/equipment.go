// ABOUTME: Equipment checkout and check-in endpoints
// ABOUTME: Batch check-in serves the offline queue flush
package api

import (
	"context"
	"time"

	"github.com/studiokit/studioctl/models"
)

// ListEquipment fetches the gear inventory.
func (c *Client) ListEquipment(ctx context.Context) ([]models.EquipmentItem, error) {
	var items []models.EquipmentItem
	if err := c.get(ctx, "/equipment/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CheckoutEquipment records a checkout of one item to a member.
func (c *Client) CheckoutEquipment(ctx context.Context, assetTag, memberUID string) error {
	if assetTag == "" {
		return &FieldError{Field: "asset_tag", Message: "asset tag is required"}
	}
	if memberUID == "" {
		return &FieldError{Field: "member_uid", Message: "member is required"}
	}
	body := map[string]string{"asset_tag": assetTag, "member_uid": memberUID}
	return c.post(ctx, "/equipment/checkout", body, nil)
}

// CheckinRecord is one scanned return; ScannedAt preserves the offline
// scan time rather than the flush time.
type CheckinRecord struct {
	AssetTag  string    `json:"asset_tag"`
	MemberUID string    `json:"member_uid,omitempty"`
	Condition string    `json:"condition,omitempty"`
	ScannedAt time.Time `json:"scanned_at"`
}

// CheckinEquipment records one return.
func (c *Client) CheckinEquipment(ctx context.Context, rec CheckinRecord) error {
	if rec.AssetTag == "" {
		return &FieldError{Field: "asset_tag", Message: "asset tag is required"}
	}
	return c.post(ctx, "/equipment/checkin", rec, nil)
}

// CheckinBatch flushes queued offline check-ins in one call. The backend
// applies records independently; a partial failure comes back as a
// per-record error list.
type CheckinBatchResult struct {
	Applied int                 `json:"applied"`
	Errors  []CheckinBatchError `json:"errors,omitempty"`
}

type CheckinBatchError struct {
	AssetTag string `json:"asset_tag"`
	Detail   string `json:"detail"`
}

func (c *Client) CheckinBatch(ctx context.Context, records []CheckinRecord) (*CheckinBatchResult, error) {
	if len(records) == 0 {
		return &CheckinBatchResult{}, nil
	}
	var result CheckinBatchResult
	body := map[string][]CheckinRecord{"records": records}
	if err := c.post(ctx, "/equipment/checkin/batch", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
