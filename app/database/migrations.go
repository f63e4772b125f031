package database

import (
	"database/sql"
	"fmt"
	"log"
)

// EnsureSchema creates the tables the application needs if they do not
// already exist. Payments live as a JSONB array on the student row so a
// single read returns the whole fee history.
func EnsureSchema(db *sql.DB) error {
	log.Println("Ensuring database schema...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			class TEXT NOT NULL DEFAULT '',
			contact TEXT NOT NULL DEFAULT '',
			total_fee NUMERIC NOT NULL DEFAULT 0,
			payments JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS logs (
			id BIGSERIAL PRIMARY KEY,
			action TEXT NOT NULL,
			details JSONB NOT NULL DEFAULT '{}',
			by_user TEXT NOT NULL,
			at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_class ON students (class)`,
		`CREATE INDEX IF NOT EXISTS idx_students_created_at ON students (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_at ON logs (at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %v", err)
		}
	}

	log.Println("Database schema ready")
	return nil
}
