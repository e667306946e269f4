// ABOUTME: Local store schema definitions
// ABOUTME: Offline check-in queue, preferences, and flush bookkeeping
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS checkin_queue (
	id TEXT PRIMARY KEY,
	asset_tag TEXT NOT NULL,
	member_uid TEXT,
	condition_note TEXT,
	scanned_at DATETIME NOT NULL,
	status TEXT NOT NULL DEFAULT 'queued',
	error TEXT,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checkin_queue_status ON checkin_queue(status);

CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS flush_state (
	queue TEXT PRIMARY KEY,
	last_flush_at DATETIME,
	status TEXT NOT NULL DEFAULT 'idle',
	error TEXT,
	updated_at DATETIME NOT NULL
);
`

// InitSchema creates all tables if they don't exist.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
