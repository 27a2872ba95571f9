package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// accountRepository is the SQL implementation of [AccountRepository] over
// the "accounts" table.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository].
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAccount inserts account and returns it with AccountID and CreatedAt
// set. A duplicate login yields [ErrLoginAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertAccountQuery(account)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(&account.AccountID, scanTime(&account.CreatedAt))
	if err != nil {
		log.Err(err).Str("func", "accountRepository.CreateAccount").Str("login", account.Login).Msg("error inserting account")
		if r.isUniqueViolation(err) {
			return models.Account{}, ErrLoginAlreadyExists
		}
		return models.Account{}, r.wrap(ErrExecutingQuery, err)
	}

	return account, nil
}

// FindAccountByLogin returns the account with the given login or
// [ErrAccountNotFound].
func (r *accountRepository) FindAccountByLogin(ctx context.Context, login string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildFindAccountByLoginQuery(login)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Account
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&found.AccountID,
		&found.Login,
		&found.Name,
		&found.AuthHash,
		&found.EncryptionSalt,
		scanTime(&found.CreatedAt),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "accountRepository.FindAccountByLogin").Str("login", login).Msg("error finding account")
		return models.Account{}, r.wrap(ErrScanningRow, err)
	}

	return found, nil
}
