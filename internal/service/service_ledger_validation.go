package service

import (
	"context"
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/validators"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// LedgerServiceWrapper decorates a LedgerService, e.g. with input
// validation.
type LedgerServiceWrapper interface {
	Wrap(LedgerService) LedgerService
}

// LedgerValidationService rejects malformed input before it reaches the
// wrapped LedgerService. Failures match ErrInvalidDataProvided.
type LedgerValidationService struct {
	inner     LedgerService
	validator validators.Validator
}

func NewLedgerValidationService() LedgerServiceWrapper {
	return &LedgerValidationService{
		validator: validators.NewLedgerValidator(),
	}
}

func (v *LedgerValidationService) Wrap(inner LedgerService) LedgerService {
	v.inner = inner
	return v
}

func (v *LedgerValidationService) CreateAsset(ctx context.Context, creator int64, price models.Amount, metadataPointer string, encryptedKey []byte) (models.Asset, error) {
	asset := models.Asset{Price: price, MetadataPointer: metadataPointer, Creator: creator, EncryptedKey: encryptedKey}
	if err := v.validator.Validate(ctx, asset); err != nil {
		return models.Asset{}, invalid(err)
	}
	return v.inner.CreateAsset(ctx, creator, price, metadataPointer, encryptedKey)
}

func (v *LedgerValidationService) PurchaseAccess(ctx context.Context, assetID int64, payment models.Amount, buyer int64) (models.PurchaseReceipt, error) {
	if err := v.validateOwnership(ctx, buyer, assetID); err != nil {
		return models.PurchaseReceipt{}, err
	}
	return v.inner.PurchaseAccess(ctx, assetID, payment, buyer)
}

func (v *LedgerValidationService) GetEncryptedKey(ctx context.Context, assetID int64, requester int64) ([]byte, error) {
	if err := v.validateOwnership(ctx, requester, assetID); err != nil {
		return nil, err
	}
	return v.inner.GetEncryptedKey(ctx, assetID, requester)
}

func (v *LedgerValidationService) GetAssetPublicInfo(ctx context.Context, assetID int64) (models.AssetPublicInfo, error) {
	if err := v.validator.Validate(ctx, models.Asset{ID: assetID}, validators.FieldAssetID); err != nil {
		return models.AssetPublicInfo{}, invalid(err)
	}
	return v.inner.GetAssetPublicInfo(ctx, assetID)
}

func (v *LedgerValidationService) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.AssetPublicInfo, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultAssetPageLimit
	}
	if err := v.validator.Validate(ctx, filter, validators.FieldLimit, validators.FieldAssetID); err != nil {
		return nil, invalid(err)
	}
	return v.inner.ListAssets(ctx, filter)
}

func (v *LedgerValidationService) AssetCount(ctx context.Context) (int64, error) {
	return v.inner.AssetCount(ctx)
}

func (v *LedgerValidationService) OwnershipOf(ctx context.Context, accountID, assetID int64) (models.Ownership, error) {
	if err := v.validateOwnership(ctx, accountID, assetID); err != nil {
		return models.Ownership{}, err
	}
	return v.inner.OwnershipOf(ctx, accountID, assetID)
}

func (v *LedgerValidationService) IsAuthorized(ctx context.Context, accountID, assetID int64) (bool, error) {
	if err := v.validateOwnership(ctx, accountID, assetID); err != nil {
		return false, err
	}
	return v.inner.IsAuthorized(ctx, accountID, assetID)
}

func (v *LedgerValidationService) PendingWithdrawals(ctx context.Context, accountID int64) (models.Amount, error) {
	if err := v.validator.Validate(ctx, models.Ownership{AccountID: accountID}, validators.FieldAccountID); err != nil {
		return 0, invalid(err)
	}
	return v.inner.PendingWithdrawals(ctx, accountID)
}

func (v *LedgerValidationService) Withdraw(ctx context.Context, accountID int64) (models.Withdrawal, error) {
	if err := v.validator.Validate(ctx, models.Ownership{AccountID: accountID}, validators.FieldAccountID); err != nil {
		return models.Withdrawal{}, invalid(err)
	}
	return v.inner.Withdraw(ctx, accountID)
}

func (v *LedgerValidationService) LedgerBalance(ctx context.Context) (models.LedgerBalance, error) {
	return v.inner.LedgerBalance(ctx)
}

func (v *LedgerValidationService) Events(ctx context.Context, filter models.EventFilter) ([]models.LedgerEvent, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultEventPageLimit
	}
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, invalid(err)
	}
	return v.inner.Events(ctx, filter)
}

func (v *LedgerValidationService) validateOwnership(ctx context.Context, accountID, assetID int64) error {
	if err := v.validator.Validate(ctx, models.Ownership{AccountID: accountID, AssetID: assetID}); err != nil {
		return invalid(err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
