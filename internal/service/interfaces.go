package service

import (
	"context"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LedgerService is the asset and payout ledger. It is the only place that
// decides who may read an asset key.
type LedgerService interface {
	// CreateAsset lists a new asset for creator and returns it with its id.
	CreateAsset(ctx context.Context, creator int64, price models.Amount, metadataPointer string, encryptedKey []byte) (models.Asset, error)

	// PurchaseAccess grants buyer one unit of assetID if payment equals the
	// price and credits the creator.
	PurchaseAccess(ctx context.Context, assetID int64, payment models.Amount, buyer int64) (models.PurchaseReceipt, error)

	// GetEncryptedKey returns the stored key material to an owner of the
	// asset and models.ErrUnauthorized to everyone else.
	GetEncryptedKey(ctx context.Context, assetID int64, requester int64) ([]byte, error)

	GetAssetPublicInfo(ctx context.Context, assetID int64) (models.AssetPublicInfo, error)
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.AssetPublicInfo, error)
	AssetCount(ctx context.Context) (int64, error)
	OwnershipOf(ctx context.Context, accountID, assetID int64) (models.Ownership, error)
	IsAuthorized(ctx context.Context, accountID, assetID int64) (bool, error)

	PendingWithdrawals(ctx context.Context, accountID int64) (models.Amount, error)
	Withdraw(ctx context.Context, accountID int64) (models.Withdrawal, error)
	LedgerBalance(ctx context.Context) (models.LedgerBalance, error)

	Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error)
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)
	Params(ctx context.Context, req models.ParamsRequest) (models.ParamsResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
