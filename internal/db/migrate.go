package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS revision_items (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		user_id    TEXT NOT NULL,
		topic      TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL CHECK(length(date) = 10),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_revision_items_user ON revision_items(user_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_revision_items_date ON revision_items(date)`,

	// Batch grouping: rows from one scheduling call share a batch_id.
	`ALTER TABLE revision_items ADD COLUMN batch_id TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_revision_items_batch ON revision_items(batch_id)`,
}
