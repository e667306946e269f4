// ABOUTME: Small key/value UI preferences in the local store
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Preference keys in use.
const (
	PrefDefaultOrg   = "default_org"
	PrefDefaultEvent = "default_event"
	PrefMemberUID    = "member_uid"
)

// SetPreference stores or replaces one preference.
func SetPreference(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}

// GetPreference returns a preference value, empty string if unset.
func GetPreference(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return value, nil
}
