// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func validAsset() models.Asset {
	return models.Asset{
		Price:           models.OneUnit,
		MetadataPointer: "ipfs://bafkreigh2akiscaildc",
		Creator:         1,
		EncryptedKey:    []byte("0xdeadbeef"),
	}
}

func TestLedgerValidator_Asset(t *testing.T) {
	v := NewLedgerValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(a *models.Asset)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(a *models.Asset) {}},
		{name: "zero price allowed", mutate: func(a *models.Asset) { a.Price = 0 }},
		{name: "price beyond bigint", mutate: func(a *models.Asset) { a.Price = models.Amount(math.MaxUint64) }, wantErr: ErrInvalidPrice},
		{name: "no creator", mutate: func(a *models.Asset) { a.Creator = 0 }, wantErr: ErrInvalidAccountID},
		{name: "blank pointer", mutate: func(a *models.Asset) { a.MetadataPointer = "  " }, wantErr: ErrEmptyMetadataPointer},
		{name: "long pointer", mutate: func(a *models.Asset) { a.MetadataPointer = strings.Repeat("x", MaxMetadataPointerLen+1) }, wantErr: ErrMetadataPointerTooLong},
		{name: "no key", mutate: func(a *models.Asset) { a.EncryptedKey = nil }, wantErr: ErrEmptyEncryptedKey},
		{name: "asset id only", mutate: func(a *models.Asset) { a.ID = 0 }, fields: []string{FieldAssetID}, wantErr: ErrInvalidAssetID},
		{name: "unknown field", mutate: func(a *models.Asset) {}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := validAsset()
			tt.mutate(&asset)

			err := v.Validate(ctx, asset, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form takes the same path
			assert.ErrorIs(t, v.Validate(ctx, &asset, tt.fields...), tt.wantErr)
		})
	}
}

func TestLedgerValidator_Filters(t *testing.T) {
	v := NewLedgerValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AssetFilter{Limit: 10}))
	assert.ErrorIs(t, v.Validate(ctx, models.AssetFilter{}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, models.AssetFilter{Limit: MaxPageLimit + 1}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, models.AssetFilter{Limit: 1, BeforeID: -1}, FieldLimit, FieldAssetID), ErrInvalidAssetID)

	assert.NoError(t, v.Validate(ctx, &models.EventFilter{Limit: 1}))
	assert.ErrorIs(t, v.Validate(ctx, models.EventFilter{Limit: 1, AccountID: -3}), ErrInvalidAccountID)
}

func TestLedgerValidator_Ownership(t *testing.T) {
	v := NewLedgerValidator()

	assert.NoError(t, v.Validate(context.Background(), models.Ownership{AccountID: 1, AssetID: 1}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.Ownership{AssetID: 1}), ErrInvalidAccountID)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Ownership{AccountID: 1}), ErrInvalidAssetID)
}

func TestLedgerValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewLedgerValidator().Validate(context.Background(), "asset"), ErrUnsupportedType)
}
