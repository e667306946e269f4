// ABOUTME: Migration utility for the studioctl local store.
// ABOUTME: Provides dry-run and backup capabilities for safe schema upgrades.

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/studiokit/studioctl/db"
)

func main() {
	dbPath := flag.String("db", db.DefaultPath(), "Path to local store file")
	dryRun := flag.Bool("dry-run", false, "Show what would happen without making changes")
	backup := flag.Bool("backup", true, "Create backup before migration")
	prune := flag.Duration("prune-after", 0, "Also delete flushed check-ins older than this (0 to skip)")
	flag.Parse()

	if err := migrate(*dbPath, *dryRun, *backup, *prune); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully")
}

func migrate(dbPath string, dryRun, createBackup bool, prune time.Duration) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("local store does not exist: %s", dbPath)
	}

	if createBackup && !dryRun {
		backupPath := fmt.Sprintf("%s.backup.%s", dbPath, time.Now().Format("20060102-150405"))
		log.Printf("Creating backup: %s", backupPath)

		input, err := os.ReadFile(dbPath)
		if err != nil {
			return fmt.Errorf("failed to read local store: %w", err)
		}
		if err := os.WriteFile(backupPath, input, 0600); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		log.Printf("Backup created successfully")
	}

	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer func() { _ = database.Close() }()
	database.SetMaxOpenConns(1)

	tables, err := currentTables(database)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	log.Printf("Current tables: %v", tables)

	missing := missingTables(tables)

	if dryRun {
		log.Printf("[DRY RUN] Would perform the following actions:")
		if len(missing) > 0 {
			log.Printf("[DRY RUN] - Create tables: %v", missing)
		} else {
			log.Printf("[DRY RUN] - Schema already current")
		}
		if prune > 0 {
			log.Printf("[DRY RUN] - Prune flushed check-ins older than %s", prune)
		}
		return nil
	}

	if len(missing) > 0 {
		log.Printf("Creating tables: %v", missing)
		if err := db.InitSchema(database); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	} else {
		log.Printf("Schema already current")
	}

	if prune > 0 {
		pruned, err := db.PruneFlushedCheckins(database, time.Now().Add(-prune))
		if err != nil {
			return fmt.Errorf("failed to prune check-in queue: %w", err)
		}
		log.Printf("Pruned %d flushed check-in(s)", pruned)
	}

	return nil
}

func currentTables(database *sql.DB) ([]string, error) {
	rows, err := database.Query("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func missingTables(have []string) []string {
	want := []string{"checkin_queue", "preferences", "flush_state"}
	present := map[string]bool{}
	for _, t := range have {
		present[t] = true
	}

	var missing []string
	for _, t := range want {
		if !present[t] {
			missing = append(missing, t)
		}
	}
	return missing
}
