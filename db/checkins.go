// ABOUTME: Offline equipment check-in queue
// ABOUTME: Outbox records scanned while the backend is unreachable
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

var ErrCheckinNotFound = errors.New("queued check-in not found")

// Queued check-in statuses.
const (
	CheckinQueued  = "queued"
	CheckinFlushed = "flushed"
	CheckinFailed  = "failed"
)

// QueuedCheckin is one scanned return waiting to reach the backend.
type QueuedCheckin struct {
	ID        string
	AssetTag  string
	MemberUID string
	Condition string
	ScannedAt time.Time
	Status    string
	Error     string
	CreatedAt time.Time
}

// EnqueueCheckin appends a scan to the offline queue.
func EnqueueCheckin(db *sql.DB, c *QueuedCheckin) error {
	if c.AssetTag == "" {
		return fmt.Errorf("asset tag is required")
	}
	if c.ID == "" {
		c.ID = ulid.Make().String()
	}
	if c.ScannedAt.IsZero() {
		c.ScannedAt = time.Now().UTC()
	}
	c.Status = CheckinQueued
	c.CreatedAt = time.Now().UTC()

	_, err := db.Exec(`
		INSERT INTO checkin_queue (id, asset_tag, member_uid, condition_note, scanned_at, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.AssetTag, c.MemberUID, c.Condition, c.ScannedAt, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to enqueue check-in: %w", err)
	}
	return nil
}

// PendingCheckins returns queued entries oldest first. Failed entries are
// included: a flush retries them.
func PendingCheckins(db *sql.DB) ([]QueuedCheckin, error) {
	rows, err := db.Query(`
		SELECT id, asset_tag, member_uid, condition_note, scanned_at, status, COALESCE(error, ''), created_at
		FROM checkin_queue
		WHERE status IN (?, ?)
		ORDER BY scanned_at ASC
	`, CheckinQueued, CheckinFailed)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued check-ins: %w", err)
	}
	defer rows.Close()

	var queue []QueuedCheckin
	for rows.Next() {
		var c QueuedCheckin
		if err := rows.Scan(&c.ID, &c.AssetTag, &c.MemberUID, &c.Condition, &c.ScannedAt, &c.Status, &c.Error, &c.CreatedAt); err != nil {
			return nil, err
		}
		queue = append(queue, c)
	}
	return queue, rows.Err()
}

// MarkCheckinFlushed records a successful delivery.
func MarkCheckinFlushed(db *sql.DB, id string) error {
	return setCheckinStatus(db, id, CheckinFlushed, "")
}

// MarkCheckinFailed records a delivery failure with the backend's detail.
func MarkCheckinFailed(db *sql.DB, id, errMsg string) error {
	return setCheckinStatus(db, id, CheckinFailed, errMsg)
}

func setCheckinStatus(db *sql.DB, id, status, errMsg string) error {
	result, err := db.Exec(`
		UPDATE checkin_queue SET status = ?, error = NULLIF(?, '') WHERE id = ?
	`, status, errMsg, id)
	if err != nil {
		return fmt.Errorf("failed to update queued check-in: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCheckinNotFound
	}
	return nil
}

// PruneFlushedCheckins deletes delivered entries older than cutoff and
// returns how many were removed.
func PruneFlushedCheckins(db *sql.DB, cutoff time.Time) (int64, error) {
	result, err := db.Exec(`
		DELETE FROM checkin_queue WHERE status = ? AND scanned_at < ?
	`, CheckinFlushed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune check-in queue: %w", err)
	}
	return result.RowsAffected()
}

// UpdateFlushState records the outcome of the latest queue flush.
func UpdateFlushState(db *sql.DB, queue, status, errMsg string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`
		INSERT INTO flush_state (queue, last_flush_at, status, error, updated_at)
		VALUES (?, ?, ?, NULLIF(?, ''), ?)
		ON CONFLICT(queue) DO UPDATE SET
			last_flush_at = excluded.last_flush_at,
			status = excluded.status,
			error = excluded.error,
			updated_at = excluded.updated_at
	`, queue, now, status, errMsg, now)
	if err != nil {
		return fmt.Errorf("failed to update flush state: %w", err)
	}
	return nil
}

// FlushState is the recorded outcome of the latest flush of a queue.
type FlushState struct {
	Queue       string
	LastFlushAt *time.Time
	Status      string
	Error       string
}

// GetFlushState returns the flush bookkeeping for a queue, or nil if the
// queue has never flushed.
func GetFlushState(db *sql.DB, queue string) (*FlushState, error) {
	var state FlushState
	var last sql.NullTime
	var errMsg sql.NullString

	err := db.QueryRow(`
		SELECT queue, last_flush_at, status, error FROM flush_state WHERE queue = ?
	`, queue).Scan(&state.Queue, &last, &state.Status, &errMsg)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flush state: %w", err)
	}
	if last.Valid {
		state.LastFlushAt = &last.Time
	}
	if errMsg.Valid {
		state.Error = errMsg.String
	}
	return &state, nil
}
