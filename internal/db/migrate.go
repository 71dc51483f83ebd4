package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Whole-document state keyed by name: the user, the plan list and the
	// selected plan id, each stored as JSON.
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS quiz_attempts (
		id             TEXT PRIMARY KEY,
		quiz_id        TEXT NOT NULL,
		field          TEXT NOT NULL,
		difficulty     TEXT NOT NULL
		               CHECK(difficulty IN ('beginner','intermediate','advanced')),
		correct        INTEGER NOT NULL CHECK(correct >= 0),
		total          INTEGER NOT NULL CHECK(total >= 0),
		score          REAL NOT NULL CHECK(score >= 0 AND score <= 100),
		points_awarded INTEGER NOT NULL DEFAULT 0,
		timed_out      INTEGER NOT NULL DEFAULT 0,
		finished_at    TEXT NOT NULL,
		CHECK(correct <= total)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quiz_attempts_finished ON quiz_attempts(finished_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_quiz_attempts_quiz ON quiz_attempts(quiz_id)`,
}
