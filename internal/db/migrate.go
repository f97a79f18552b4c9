package db

import (
	"context"
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
	if err := migrateBackfillRevisions(db); err != nil {
		return fmt.Errorf("backfilling document revisions: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS store_writes (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		key        TEXT NOT NULL,
		op         TEXT NOT NULL CHECK(op IN ('write','remove')),
		revision   INTEGER NOT NULL DEFAULT 0,
		bytes      INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_store_writes_key ON store_writes(key, id)`,

	// Add revision counter to documents
	`ALTER TABLE documents ADD COLUMN revision INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillRevisions gives documents written before the revision column
// existed a starting revision of 1. Idempotent.
func migrateBackfillRevisions(db *sql.DB) error {
	ctx := context.Background()
	if _, err := db.ExecContext(ctx, `UPDATE documents SET revision = 1 WHERE revision = 0`); err != nil {
		return fmt.Errorf("updating documents: %w", err)
	}
	return nil
}
