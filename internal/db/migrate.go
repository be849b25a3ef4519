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
	// seq preserves insertion order for the append-only log; the other
	// columns mirror the spreadsheet row layout one-to-one.
	`CREATE TABLE IF NOT EXISTS session_records (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		user_id    TEXT NOT NULL,
		civil_date TEXT NOT NULL,
		weekday    TEXT NOT NULL,
		check_in   TEXT NOT NULL,
		check_out  TEXT NOT NULL,
		duration   TEXT NOT NULL,
		activity   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_records_user ON session_records(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_session_records_date ON session_records(civil_date)`,
}
