package store

import (
	"context"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// AccountRepository stores ledger accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByLogin(ctx context.Context, login string) (models.Account, error)
}

// LedgerRepository is the persistent state of the asset and payout ledger.
// Every mutating method is a single transaction.
type LedgerRepository interface {
	// CreateAsset inserts the asset and its asset_created event. ID and
	// CreatedAt are assigned by the database.
	CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error)
	GetAsset(ctx context.Context, assetID int64) (models.Asset, error)
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.Asset, error)
	CountAssets(ctx context.Context) (int64, error)

	// RecordPurchase credits one unit to buyer, adds the price to the
	// creator's pending payout and to the ledger balance, and writes the
	// access_granted event. The price must already have been checked.
	RecordPurchase(ctx context.Context, asset models.Asset, buyer int64) (models.PurchaseReceipt, error)
	OwnershipOf(ctx context.Context, accountID, assetID int64) (models.Ownership, error)

	PendingPayout(ctx context.Context, accountID int64) (models.PendingPayout, error)
	// Withdraw zeroes the pending payout before recording the transfer.
	Withdraw(ctx context.Context, accountID int64) (models.Withdrawal, error)
	Balance(ctx context.Context) (models.LedgerBalance, error)

	Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error)
}
