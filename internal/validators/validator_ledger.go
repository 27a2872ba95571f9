// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// LedgerValidator checks the inputs of ledger operations before they reach
// the repository.
type LedgerValidator struct{}

func NewLedgerValidator() Validator {
	return &LedgerValidator{}
}

func (v *LedgerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Asset:
		return v.validateAsset(value, fields...)
	case *models.Asset:
		return v.validateAsset(*value, fields...)

	case models.AssetFilter:
		return v.validateAssetFilter(value, fields...)
	case *models.AssetFilter:
		return v.validateAssetFilter(*value, fields...)

	case models.EventFilter:
		return v.validateEventFilter(value, fields...)
	case *models.EventFilter:
		return v.validateEventFilter(*value, fields...)

	case models.Ownership:
		return v.validateOwnership(value, fields...)
	case *models.Ownership:
		return v.validateOwnership(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LedgerValidator) validateAsset(asset models.Asset, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCreator, FieldPrice, FieldMetadataPointer, FieldEncryptedKey}
	}

	for _, f := range fields {
		switch f {
		case FieldAssetID:
			if asset.ID <= 0 {
				return ErrInvalidAssetID
			}
		case FieldCreator:
			if asset.Creator <= 0 {
				return ErrInvalidAccountID
			}
		case FieldPrice:
			// zero is a valid price; the column is a signed BIGINT
			if uint64(asset.Price) > math.MaxInt64 {
				return ErrInvalidPrice
			}
		case FieldMetadataPointer:
			if strings.TrimSpace(asset.MetadataPointer) == "" {
				return ErrEmptyMetadataPointer
			}
			if len(asset.MetadataPointer) > MaxMetadataPointerLen {
				return ErrMetadataPointerTooLong
			}
		case FieldEncryptedKey:
			if len(asset.EncryptedKey) == 0 {
				return ErrEmptyEncryptedKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateAssetFilter(filter models.AssetFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if filter.Limit == 0 || filter.Limit > MaxPageLimit {
				return ErrInvalidLimit
			}
		case FieldAssetID:
			if filter.BeforeID < 0 {
				return ErrInvalidAssetID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateEventFilter(filter models.EventFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldAccountID}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if filter.Limit == 0 || filter.Limit > MaxPageLimit {
				return ErrInvalidLimit
			}
		case FieldAccountID:
			if filter.AccountID < 0 {
				return ErrInvalidAccountID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateOwnership(ownership models.Ownership, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldAssetID}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if ownership.AccountID <= 0 {
				return ErrInvalidAccountID
			}
		case FieldAssetID:
			if ownership.AssetID <= 0 {
				return ErrInvalidAssetID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
