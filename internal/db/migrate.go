package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the workspace schema. Every statement is idempotent, so it
// runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS timelines (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		timeline_id TEXT NOT NULL REFERENCES timelines(id) ON DELETE CASCADE,
		parent_id   TEXT REFERENCES goals(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		url         TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL DEFAULT '',
		progress    INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_timeline ON goals(timeline_id)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_parent ON goals(parent_id)`,

	// At most one root per timeline.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_goals_single_root ON goals(timeline_id) WHERE parent_id IS NULL`,
}
