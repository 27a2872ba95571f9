package store

import (
	"context"
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
)

// Storages groups the ledger server's repositories.
type Storages struct {
	AccountRepository AccountRepository
	LedgerRepository  LedgerRepository
	db                *DB
}

// NewStorages connects to the configured ledger database, applies its
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DSN, logger)
	case config.DriverPostgres, "":
		db, err = NewConnectPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories over an open handle.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		LedgerRepository:  NewLedgerRepository(db, logger),
		db:                db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
