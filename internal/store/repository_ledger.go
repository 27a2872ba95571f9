// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// ledgerRepository is the SQL implementation of [LedgerRepository].
//
// Atomicity comes from database transactions. On PostgreSQL the pending
// payout row is locked with SELECT ... FOR UPDATE and counters are bumped
// with atomic upserts; on SQLite every transaction starts IMMEDIATE and so
// holds the single write lock.
type ledgerRepository struct {
	*DB
	logger *logger.Logger
}

// NewLedgerRepository constructs a [LedgerRepository].
func NewLedgerRepository(db *DB, logger *logger.Logger) LedgerRepository {
	logger.Debug().Msg("creating ledger repository")
	return &ledgerRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAsset implements [LedgerRepository].
func (r *ledgerRepository) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.buildInsertAssetQuery(asset)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&asset.ID, scanTime(&asset.CreatedAt)); err != nil {
			return r.wrap(ErrExecutingQuery, err)
		}

		return r.appendEvent(ctx, tx, models.LedgerEvent{
			Type:      models.EventAssetCreated,
			AssetID:   asset.ID,
			AccountID: asset.Creator,
			Amount:    asset.Price,
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.CreateAsset").
			Int64("creator", asset.Creator).
			Msg("failed to create asset")
		return models.Asset{}, err
	}

	log.Info().
		Str("func", "ledgerRepository.CreateAsset").
		Int64("asset_id", asset.ID).
		Int64("creator", asset.Creator).
		Msg("asset created")
	return asset, nil
}

// GetAsset implements [LedgerRepository].
func (r *ledgerRepository) GetAsset(ctx context.Context, assetID int64) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetAssetQuery(assetID)
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	asset, err := scanAsset(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Asset{}, ErrAssetNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.GetAsset").
			Int64("asset_id", assetID).
			Msg("failed to get asset")
		return models.Asset{}, r.wrap(ErrScanningRow, err)
	}

	return asset, nil
}

// ListAssets implements [LedgerRepository].
func (r *ledgerRepository) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListAssetsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.ListAssets").Msg("failed to list assets")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0, filter.Limit)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(ErrScanningRows, err)
	}

	return assets, nil
}

// CountAssets implements [LedgerRepository].
func (r *ledgerRepository) CountAssets(ctx context.Context) (int64, error) {
	query, args, err := r.buildCountAssetsQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ledgerRepository.CountAssets").Msg("failed to count assets")
		return 0, r.wrap(ErrScanningRow, err)
	}
	return count, nil
}

// RecordPurchase implements [LedgerRepository].
func (r *ledgerRepository) RecordPurchase(ctx context.Context, asset models.Asset, buyer int64) (models.PurchaseReceipt, error) {
	log := logger.FromContext(ctx)

	receipt := models.PurchaseReceipt{
		AssetID:   asset.ID,
		AccountID: buyer,
		Paid:      asset.Price,
		Creator:   asset.Creator,
	}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.checkCredit(ctx, tx, asset.Creator, asset.Price); err != nil {
			return err
		}

		query, args, err := r.buildIncrementOwnershipQuery(buyer, asset.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&receipt.Units); err != nil {
			return r.wrap(ErrExecutingQuery, err)
		}

		query, args, err = r.buildCreditPayoutQuery(asset.Creator, asset.Price)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.wrap(ErrExecutingQuery, err)
		}

		query, args, err = r.buildAdjustBalanceQuery(int64(asset.Price))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.wrap(ErrExecutingQuery, err)
		}

		return r.appendEvent(ctx, tx, models.LedgerEvent{
			Type:      models.EventAccessGranted,
			AssetID:   asset.ID,
			AccountID: buyer,
			Amount:    asset.Price,
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.RecordPurchase").
			Int64("asset_id", asset.ID).
			Int64("buyer", buyer).
			Msg("failed to record purchase")
		return models.PurchaseReceipt{}, err
	}

	log.Info().
		Str("func", "ledgerRepository.RecordPurchase").
		Int64("asset_id", asset.ID).
		Int64("buyer", buyer).
		Uint64("units", receipt.Units).
		Msg("access granted")
	return receipt, nil
}

// checkCredit fails with [models.ErrAmountOverflow] when crediting price
// would push the creator's pending payout or the ledger balance past the
// BIGINT range. Both rows are read under lock in the purchase transaction.
func (r *ledgerRepository) checkCredit(ctx context.Context, tx *sql.Tx, creator int64, price models.Amount) error {
	var pending, balance models.Amount

	query, args, err := r.buildGetPayoutQuery(creator, true)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&pending)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return r.wrap(ErrScanningRow, err)
	}

	query, args, err = r.buildGetBalanceQuery(true)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&balance); err != nil {
		return r.wrap(ErrScanningRow, err)
	}

	if _, err := pending.Add(price); err != nil {
		return fmt.Errorf("%w: pending payout: %w", models.ErrAmountOverflow, err)
	}
	if _, err := balance.Add(price); err != nil {
		return fmt.Errorf("%w: ledger balance: %w", models.ErrAmountOverflow, err)
	}
	return nil
}

// OwnershipOf implements [LedgerRepository]. An account that never bought
// the asset holds zero units.
func (r *ledgerRepository) OwnershipOf(ctx context.Context, accountID, assetID int64) (models.Ownership, error) {
	ownership := models.Ownership{AccountID: accountID, AssetID: assetID}

	query, args, err := r.buildGetOwnershipQuery(accountID, assetID)
	if err != nil {
		return models.Ownership{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(&ownership.Units)
	if errors.Is(err, sql.ErrNoRows) {
		return ownership, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerRepository.OwnershipOf").
			Int64("account_id", accountID).
			Int64("asset_id", assetID).
			Msg("failed to read ownership")
		return models.Ownership{}, r.wrap(ErrScanningRow, err)
	}
	return ownership, nil
}

// PendingPayout implements [LedgerRepository].
func (r *ledgerRepository) PendingPayout(ctx context.Context, accountID int64) (models.PendingPayout, error) {
	payout := models.PendingPayout{AccountID: accountID}

	query, args, err := r.buildGetPayoutQuery(accountID, false)
	if err != nil {
		return models.PendingPayout{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(&payout.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return payout, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerRepository.PendingPayout").
			Int64("account_id", accountID).
			Msg("failed to read pending payout")
		return models.PendingPayout{}, r.wrap(ErrScanningRow, err)
	}
	return payout, nil
}

// Withdraw implements [LedgerRepository]. The pending amount is read under
// lock and zeroed before the transfer row is written, so a concurrent or
// repeated withdraw sees zero and gets [ErrNoPendingPayout].
func (r *ledgerRepository) Withdraw(ctx context.Context, accountID int64) (models.Withdrawal, error) {
	log := logger.FromContext(ctx)

	withdrawal := models.Withdrawal{AccountID: accountID}

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.buildGetPayoutQuery(accountID, true)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		err = tx.QueryRowContext(ctx, query, args...).Scan(&withdrawal.Amount)
		if errors.Is(err, sql.ErrNoRows) || (err == nil && withdrawal.Amount == 0) {
			return ErrNoPendingPayout
		}
		if err != nil {
			return r.wrap(ErrScanningRow, err)
		}

		query, args, err = r.buildZeroPayoutQuery(accountID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.wrap(ErrExecutingQuery, err)
		}

		query, args, err = r.buildInsertTransferQuery(accountID, withdrawal.Amount)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&withdrawal.TransferID, scanTime(&withdrawal.CreatedAt)); err != nil {
			return r.wrap(ErrExecutingQuery, err)
		}

		query, args, err = r.buildAdjustBalanceQuery(-int64(withdrawal.Amount))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.wrap(ErrExecutingQuery, err)
		}

		return r.appendEvent(ctx, tx, models.LedgerEvent{
			Type:      models.EventFundsWithdrawn,
			AccountID: accountID,
			Amount:    withdrawal.Amount,
		})
	})
	if errors.Is(err, ErrNoPendingPayout) {
		return models.Withdrawal{}, err
	}
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.Withdraw").
			Int64("account_id", accountID).
			Msg("failed to withdraw")
		return models.Withdrawal{}, err
	}

	log.Info().
		Str("func", "ledgerRepository.Withdraw").
		Int64("account_id", accountID).
		Int64("transfer_id", withdrawal.TransferID).
		Str("amount", withdrawal.Amount.String()).
		Msg("funds withdrawn")
	return withdrawal, nil
}

// Balance implements [LedgerRepository].
func (r *ledgerRepository) Balance(ctx context.Context) (models.LedgerBalance, error) {
	query, args, err := r.buildGetBalanceQuery(false)
	if err != nil {
		return models.LedgerBalance{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var balance models.LedgerBalance
	if err := r.QueryRowContext(ctx, query, args...).Scan(&balance.Amount); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ledgerRepository.Balance").Msg("failed to read balance")
		return models.LedgerBalance{}, r.wrap(ErrScanningRow, err)
	}
	return balance, nil
}

// Events implements [LedgerRepository].
func (r *ledgerRepository) Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error) {
	query, args, err := r.buildListEventsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ledgerRepository.Events").Msg("failed to list events")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.LedgerEvent, 0, filter.Limit)
	for rows.Next() {
		var e models.LedgerEvent
		var eventType string
		if err := rows.Scan(&e.ID, &eventType, &e.AssetID, &e.AccountID, &e.Amount, scanTime(&e.CreatedAt)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.Type = models.EventType(eventType)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(ErrScanningRows, err)
	}

	return events, nil
}

func (r *ledgerRepository) appendEvent(ctx context.Context, tx *sql.Tx, event models.LedgerEvent) error {
	query, args, err := r.buildInsertEventQuery(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return r.wrap(ErrExecutingQuery, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (models.Asset, error) {
	var a models.Asset
	err := row.Scan(&a.ID, &a.Price, &a.MetadataPointer, &a.Creator, &a.EncryptedKey, scanTime(&a.CreatedAt))
	return a, err
}
