// ABOUTME: Local store connection management and initialization
// ABOUTME: Opens the SQLite database with WAL mode at an XDG path
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is where the console keeps its offline queue and
// preferences.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "studioctl", "studioctl.db")
}

// Open opens the local store at path, creating directories and schema as
// needed.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// Single connection avoids database locked errors under SQLite.
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
