package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrateUp applies every .up.sql migration in lexical order. The app_state
// schema is written to be idempotent, so re-running against an existing
// database is safe.
func MigrateUp(db *sql.DB) error {
	return runMigrations(db, ".up.sql")
}

// MigrateDown reverses the schema, dropping the app_state table. Tests use it
// to prove the up scripts rebuild a working store from scratch.
func MigrateDown(db *sql.DB) error {
	return runMigrations(db, ".down.sql")
}

func runMigrations(db *sql.DB, suffix string) error {
	names, err := fs.Glob(migrationFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		stmt, readErr := migrationFS.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("read migration %s: %w", name, readErr)
		}
		tx, txErr := db.Begin()
		if txErr != nil {
			return fmt.Errorf("begin migration %s: %w", name, txErr)
		}
		if _, execErr := tx.Exec(string(stmt)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", name, execErr)
		}
		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("commit migration %s: %w", name, commitErr)
		}
	}
	return nil
}
