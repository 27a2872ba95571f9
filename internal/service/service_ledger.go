// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// Page sizes used when a caller asks for none.
const (
	DefaultAssetPageLimit = 20
	DefaultEventPageLimit = 100
)

// ledgerService holds the ledger's business rules: exact payment and the
// ownership check in front of key release. Persistence and atomicity are
// the repository's.
type ledgerService struct {
	ledgerRepository store.LedgerRepository

	logger *logger.Logger
}

func NewLedgerService(ledgerRepository store.LedgerRepository, logger *logger.Logger) LedgerService {
	return &ledgerService{
		ledgerRepository: ledgerRepository,
		logger:           logger,
	}
}

func (s *ledgerService) CreateAsset(ctx context.Context, creator int64, price models.Amount, metadataPointer string, encryptedKey []byte) (models.Asset, error) {
	asset, err := s.ledgerRepository.CreateAsset(ctx, models.Asset{
		Price:           price,
		MetadataPointer: metadataPointer,
		Creator:         creator,
		EncryptedKey:    encryptedKey,
	})
	if err != nil {
		return models.Asset{}, fmt.Errorf("error creating asset: %w", err)
	}
	return asset, nil
}

// PurchaseAccess implements [LedgerService]. Only an exact payment is
// accepted. The price is read outside the write transaction; an asset
// never changes after creation, so the check cannot go stale.
func (s *ledgerService) PurchaseAccess(ctx context.Context, assetID int64, payment models.Amount, buyer int64) (models.PurchaseReceipt, error) {
	log := logger.FromContext(ctx)

	asset, err := s.getAsset(ctx, assetID)
	if err != nil {
		return models.PurchaseReceipt{}, err
	}

	switch {
	case payment < asset.Price:
		log.Info().Int64("asset_id", assetID).Int64("buyer", buyer).
			Str("payment", payment.String()).Str("price", asset.Price.String()).
			Msg("purchase rejected: insufficient payment")
		return models.PurchaseReceipt{}, models.ErrInsufficientPayment
	case payment > asset.Price:
		log.Info().Int64("asset_id", assetID).Int64("buyer", buyer).
			Str("payment", payment.String()).Str("price", asset.Price.String()).
			Msg("purchase rejected: payment exceeds price")
		return models.PurchaseReceipt{}, models.ErrExcessPayment
	}

	receipt, err := s.ledgerRepository.RecordPurchase(ctx, asset, buyer)
	if err != nil {
		return models.PurchaseReceipt{}, fmt.Errorf("error recording purchase: %w", err)
	}
	return receipt, nil
}

// GetEncryptedKey implements [LedgerService].
func (s *ledgerService) GetEncryptedKey(ctx context.Context, assetID int64, requester int64) ([]byte, error) {
	asset, err := s.getAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	ownership, err := s.ledgerRepository.OwnershipOf(ctx, requester, assetID)
	if err != nil {
		return nil, fmt.Errorf("error reading ownership: %w", err)
	}
	if !ownership.Authorized() {
		logger.FromContext(ctx).Info().
			Int64("asset_id", assetID).
			Int64("requester", requester).
			Msg("key request denied")
		return nil, models.ErrUnauthorized
	}

	return asset.EncryptedKey, nil
}

func (s *ledgerService) GetAssetPublicInfo(ctx context.Context, assetID int64) (models.AssetPublicInfo, error) {
	asset, err := s.getAsset(ctx, assetID)
	if err != nil {
		return models.AssetPublicInfo{}, err
	}
	return asset.PublicInfo(), nil
}

func (s *ledgerService) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.AssetPublicInfo, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultAssetPageLimit
	}

	assets, err := s.ledgerRepository.ListAssets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing assets: %w", err)
	}

	infos := make([]models.AssetPublicInfo, 0, len(assets))
	for _, a := range assets {
		infos = append(infos, a.PublicInfo())
	}
	return infos, nil
}

func (s *ledgerService) AssetCount(ctx context.Context) (int64, error) {
	count, err := s.ledgerRepository.CountAssets(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting assets: %w", err)
	}
	return count, nil
}

// OwnershipOf implements [LedgerService]. Asking about an asset that does
// not exist is models.ErrUnknownAsset rather than zero units.
func (s *ledgerService) OwnershipOf(ctx context.Context, accountID, assetID int64) (models.Ownership, error) {
	if _, err := s.getAsset(ctx, assetID); err != nil {
		return models.Ownership{}, err
	}

	ownership, err := s.ledgerRepository.OwnershipOf(ctx, accountID, assetID)
	if err != nil {
		return models.Ownership{}, fmt.Errorf("error reading ownership: %w", err)
	}
	return ownership, nil
}

func (s *ledgerService) IsAuthorized(ctx context.Context, accountID, assetID int64) (bool, error) {
	ownership, err := s.OwnershipOf(ctx, accountID, assetID)
	if err != nil {
		return false, err
	}
	return ownership.Authorized(), nil
}

func (s *ledgerService) PendingWithdrawals(ctx context.Context, accountID int64) (models.Amount, error) {
	payout, err := s.ledgerRepository.PendingPayout(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("error reading pending payout: %w", err)
	}
	return payout.Amount, nil
}

// Withdraw implements [LedgerService].
func (s *ledgerService) Withdraw(ctx context.Context, accountID int64) (models.Withdrawal, error) {
	withdrawal, err := s.ledgerRepository.Withdraw(ctx, accountID)
	if errors.Is(err, store.ErrNoPendingPayout) {
		return models.Withdrawal{}, models.ErrNothingToWithdraw
	}
	if err != nil {
		return models.Withdrawal{}, fmt.Errorf("error withdrawing: %w", err)
	}
	return withdrawal, nil
}

func (s *ledgerService) LedgerBalance(ctx context.Context) (models.LedgerBalance, error) {
	balance, err := s.ledgerRepository.Balance(ctx)
	if err != nil {
		return models.LedgerBalance{}, fmt.Errorf("error reading ledger balance: %w", err)
	}
	return balance, nil
}

func (s *ledgerService) Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultEventPageLimit
	}

	events, err := s.ledgerRepository.Events(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return events, nil
}

func (s *ledgerService) getAsset(ctx context.Context, assetID int64) (models.Asset, error) {
	asset, err := s.ledgerRepository.GetAsset(ctx, assetID)
	if errors.Is(err, store.ErrAssetNotFound) {
		return models.Asset{}, models.ErrUnknownAsset
	}
	if err != nil {
		return models.Asset{}, fmt.Errorf("error reading asset %d: %w", assetID, err)
	}
	return asset, nil
}
