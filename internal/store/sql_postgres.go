package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
)

// NewConnectPostgres opens the ledger database on PostgreSQL. Purchases
// lock asset rows, so the pool is kept small.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	l := log.With().Str("func", "NewConnectPostgres").Str("dialect", string(DialectPostgres)).Logger()

	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		l.Err(err).Msg("failed to open ledger database")
		return nil, fmt.Errorf("open postgres ledger: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		l.Err(err).Msg("ledger database is unreachable")
		return nil, fmt.Errorf("ping postgres ledger: %w", err)
	}
	l.Info().Msg("connected to ledger database")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
