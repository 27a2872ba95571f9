package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/migrations"
)

// Dialect is the SQL flavour a [DB] speaks.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB is a database handle that knows its dialect. Repositories build their
// queries through it so the same code runs on PostgreSQL and SQLite.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the ledger schema for the handle's dialect.
func (db *DB) Migrate() error {
	set := migrations.Postgres
	if db.dialect == DialectSQLite {
		set = migrations.SQLite
	}
	return migrations.Migrate(db.DB, set)
}

// MigrateClient applies the CLI session schema.
func (db *DB) MigrateClient() error {
	return migrations.Migrate(db.DB, migrations.Client)
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// lockRows appends a row lock on PostgreSQL. SQLite connections are opened
// with _txlock=immediate, so a transaction already holds the write lock.
func (db *DB) lockRows(q sq.SelectBuilder) sq.SelectBuilder {
	if db.dialect == DialectSQLite {
		return q
	}
	return q.Suffix("FOR UPDATE")
}

// inTx runs fn in a transaction and commits when fn returns nil.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return db.wrap(ErrCommitingTransaction, err)
	}
	return nil
}

// wrap attaches sentinel to a driver error and marks transient failures with
// [ErrTransient].
func (db *DB) wrap(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrTransient, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
