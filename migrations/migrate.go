package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// dialects maps the application's storage engine names to goose dialects.
var dialects = map[string]string{
	"postgres": "pgx",
	"sqlite":   "sqlite3",
}

// Migrate applies all embedded migrations to db using the dialect matching
// the given storage engine ("postgres" or "sqlite"). The schema only uses
// TEXT and TIMESTAMP columns, so the same migration files serve both engines.
func Migrate(db *sql.DB, engine string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[engine]
	if !ok {
		return fmt.Errorf("migration error: unknown engine %q", engine)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
