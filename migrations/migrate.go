// Package migrations embeds the goose SQL migrations of every supported
// database dialect and applies them at startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported dialect names. They double as the goose dialect and the name of
// the embedded directory holding that dialect's migrations.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var gooseDialects = map[string]string{
	DialectPostgres: "pgx",
	DialectSQLite:   "sqlite3",
}

// Migrate applies all pending migrations of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
