// Package migrations embeds the goose migrations for the ledger database
// (PostgreSQL or SQLite) and the CLI's local session database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

// Set selects a directory of migrations and the goose dialect it is
// written for.
type Set struct {
	Dir     string
	Dialect string
}

var (
	Postgres = Set{Dir: "postgres", Dialect: "pgx"}
	SQLite   = Set{Dir: "sqlite", Dialect: "sqlite3"}
	Client   = Set{Dir: "client", Dialect: "sqlite3"}
)

var errNilDB = errors.New("db is nil")

// Migrate applies every pending migration of set to db.
func Migrate(db *sql.DB, set Set) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(set.Dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, set.Dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
