package models

import "time"

// Asset is a listed encrypted asset as the ledger stores it. An asset is
// immutable once created and is never deleted.
type Asset struct {
	// ID is assigned by the ledger: 1, 2, 3, ... and never reused.
	ID int64 `json:"id"`

	// Price is the exact payment PurchaseAccess accepts.
	Price Amount `json:"price"`

	// MetadataPointer is the ipfs:// URI of the public metadata document.
	MetadataPointer string `json:"metadata_pointer"`

	// Creator is the account credited on every sale.
	Creator int64 `json:"creator"`

	// EncryptedKey is the opaque key material released only to owners.
	// It is never part of a JSON response.
	EncryptedKey []byte `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Asset model.
func (a Asset) TableName() string {
	return "assets"
}

// PublicInfo drops the key material.
func (a Asset) PublicInfo() AssetPublicInfo {
	return AssetPublicInfo{
		ID:              a.ID,
		Price:           a.Price,
		MetadataPointer: a.MetadataPointer,
		Creator:         a.Creator,
		CreatedAt:       a.CreatedAt,
	}
}

// AssetPublicInfo is everything anyone may read about an asset.
type AssetPublicInfo struct {
	ID              int64     `json:"id"`
	Price           Amount    `json:"price"`
	MetadataPointer string    `json:"metadata_pointer"`
	Creator         int64     `json:"creator"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateAssetRequest is the body of a listing request. The creator is
// always the authenticated account.
type CreateAssetRequest struct {
	Price           Amount `json:"price"`
	MetadataPointer string `json:"metadata_pointer"`
	// EncryptedKey is base64 on the wire (encoding/json []byte).
	EncryptedKey []byte `json:"encrypted_key"`
}

// EncryptedKeyResponse carries released key material to an owner.
type EncryptedKeyResponse struct {
	AssetID      int64  `json:"asset_id"`
	EncryptedKey []byte `json:"encrypted_key"`
}

// AssetCount is the number of assets ever listed.
type AssetCount struct {
	Count int64 `json:"count"`
}

// AssetMetadata is the public JSON document published next to the
// encrypted blob. Its pointer is what the ledger stores.
type AssetMetadata struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	EncryptedContent string `json:"encrypted_content"`
	Image            string `json:"image"`
}
