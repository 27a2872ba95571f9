package service

import (
	"context"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/content"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// ClientAuthService registers and logs in an account and keeps its session
// in the local database. The password is only used to derive the auth
// hash and never leaves the process.
type ClientAuthService interface {
	Register(ctx context.Context, login, password, name string) (models.Session, error)
	Login(ctx context.Context, login, password string) (models.Session, error)
	Logout(ctx context.Context) error

	// Restore loads the saved session and hands its token to the ledger
	// adapter. It returns ErrNotLoggedIn when there is none.
	Restore(ctx context.Context) (models.Session, error)
}

// PublishService encrypts an asset, publishes the ciphertext and its
// metadata, and lists the asset on the ledger.
type PublishService interface {
	PublishAsset(ctx context.Context, req PublishRequest) (PublishResult, error)
}

// RetrievalService is the access-gated retrieval pipeline. It is stateless;
// nothing is cached between calls.
type RetrievalService interface {
	Retrieve(ctx context.Context, assetID int64, shape crypto.Shape) (RetrievedContent, error)
}

// MarketService covers the read and payment operations of the CLI.
type MarketService interface {
	List(ctx context.Context, filter models.AssetFilter) ([]models.AssetPublicInfo, error)
	Count(ctx context.Context) (int64, error)
	Info(ctx context.Context, assetID int64) (AssetInfo, error)

	// Purchase pays for one unit of assetID. A nil payment pays the listed
	// price.
	Purchase(ctx context.Context, assetID int64, payment *models.Amount) (models.PurchaseReceipt, error)

	// Pending returns the payout owed to accountID, or to the logged-in
	// account when accountID is zero.
	Pending(ctx context.Context, accountID int64) (models.PendingPayout, error)
	Withdraw(ctx context.Context) (models.Withdrawal, error)
	Balance(ctx context.Context) (models.LedgerBalance, error)
	Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error)
	ServerVersion(ctx context.Context) (string, error)
}

// PublishRequest describes an asset to publish. Password is required for
// crypto.ShapeDetachedTag and ignored otherwise.
type PublishRequest struct {
	Name        string
	Description string
	Image       string
	Contents    []byte
	Price       models.Amount
	Shape       crypto.Shape
	Password    string
}

// PublishResult identifies everything PublishAsset created.
type PublishResult struct {
	Asset      models.Asset
	ContentID  adapter.ContentID
	MetadataID adapter.ContentID
	// Key is the random content key for crypto.ShapeCombined. It is kept
	// only so the creator can back it up.
	Key *crypto.Key
}

// RetrievedContent is a decrypted asset and how to render it.
type RetrievedContent struct {
	AssetID  int64
	Metadata models.AssetMetadata
	Data     []byte
	Kind     content.Kind
}

// AssetInfo is the public view of an asset with its resolved metadata.
// Metadata is zero and MetadataRaw holds the text when the document is not
// JSON.
type AssetInfo struct {
	models.AssetPublicInfo
	Metadata    models.AssetMetadata
	MetadataRaw string
	Owned       models.Ownership
}
