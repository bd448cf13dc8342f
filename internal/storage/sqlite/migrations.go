package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// migrationsFS holds the goose migrations. They run on startup to ensure
// tables exist.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// runMigrations applies any pending migrations.
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return goose.Up(db, "migrations")
}
