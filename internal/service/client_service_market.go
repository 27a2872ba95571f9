package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

type marketService struct {
	ledger   adapter.LedgerAdapter
	resolver adapter.ContentResolver
	sessions store.SessionRepository
	logger   *logger.Logger
}

func NewMarketService(ledger adapter.LedgerAdapter, resolver adapter.ContentResolver, sessions store.SessionRepository, logger *logger.Logger) MarketService {
	return &marketService{
		ledger:   ledger,
		resolver: resolver,
		sessions: sessions,
		logger:   logger,
	}
}

func (m *marketService) List(ctx context.Context, filter models.AssetFilter) ([]models.AssetPublicInfo, error) {
	return m.ledger.ListAssets(ctx, filter)
}

func (m *marketService) Count(ctx context.Context) (int64, error) {
	return m.ledger.AssetCount(ctx)
}

// Info returns the public view of an asset. Metadata that cannot be
// resolved is logged and left empty; the ledger entry is still returned.
func (m *marketService) Info(ctx context.Context, assetID int64) (AssetInfo, error) {
	public, err := m.ledger.GetAssetPublicInfo(ctx, assetID)
	if err != nil {
		return AssetInfo{}, err
	}

	info := AssetInfo{AssetPublicInfo: public}

	if metaID, err := adapter.ParseContentID(public.MetadataPointer); err != nil {
		m.logger.Warn().Err(err).Int64("asset_id", assetID).Msg("metadata pointer is not a content id")
	} else if parsed, err := m.resolver.ResolveParsed(ctx, metaID, &info.Metadata); err != nil {
		m.logger.Warn().Err(err).Int64("asset_id", assetID).Msg("metadata unavailable")
	} else if !parsed.JSON {
		info.MetadataRaw = string(parsed.Raw)
	}

	if session, err := m.sessions.GetSession(ctx); err == nil {
		info.Owned, err = m.ledger.OwnershipOf(ctx, session.AccountID, assetID)
		if err != nil {
			return AssetInfo{}, fmt.Errorf("ownership: %w", err)
		}
	}

	return info, nil
}

func (m *marketService) Purchase(ctx context.Context, assetID int64, payment *models.Amount) (models.PurchaseReceipt, error) {
	if payment == nil {
		public, err := m.ledger.GetAssetPublicInfo(ctx, assetID)
		if err != nil {
			return models.PurchaseReceipt{}, err
		}
		payment = &public.Price
	}

	receipt, err := m.ledger.PurchaseAccess(ctx, assetID, *payment)
	if err != nil {
		return models.PurchaseReceipt{}, err
	}

	m.logger.Info().Int64("asset_id", assetID).Str("paid", receipt.Paid.String()).Uint64("units", receipt.Units).Msg("access purchased")
	return receipt, nil
}

func (m *marketService) Pending(ctx context.Context, accountID int64) (models.PendingPayout, error) {
	if accountID == 0 {
		session, err := m.sessions.GetSession(ctx)
		if errors.Is(err, store.ErrNoSession) {
			return models.PendingPayout{}, ErrNotLoggedIn
		}
		if err != nil {
			return models.PendingPayout{}, fmt.Errorf("load session: %w", err)
		}
		accountID = session.AccountID
	}

	amount, err := m.ledger.PendingWithdrawals(ctx, accountID)
	if err != nil {
		return models.PendingPayout{}, err
	}
	return models.PendingPayout{AccountID: accountID, Amount: amount}, nil
}

func (m *marketService) Withdraw(ctx context.Context) (models.Withdrawal, error) {
	withdrawal, err := m.ledger.Withdraw(ctx)
	if err != nil {
		return models.Withdrawal{}, err
	}

	m.logger.Info().Int64("transfer_id", withdrawal.TransferID).Str("amount", withdrawal.Amount.String()).Msg("funds withdrawn")
	return withdrawal, nil
}

func (m *marketService) Balance(ctx context.Context) (models.LedgerBalance, error) {
	return m.ledger.LedgerBalance(ctx)
}

func (m *marketService) Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error) {
	return m.ledger.Events(ctx, filter)
}

func (m *marketService) ServerVersion(ctx context.Context) (string, error) {
	return m.ledger.Version(ctx)
}
