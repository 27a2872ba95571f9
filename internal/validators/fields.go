package validators

// Field names accepted by Validate to restrict validation to a subset of
// fields.
const (
	FieldAccountID       = "account_id"
	FieldAssetID         = "asset_id"
	FieldCreator         = "creator"
	FieldPrice           = "price"
	FieldMetadataPointer = "metadata_pointer"
	FieldEncryptedKey    = "encrypted_key"
	FieldLimit           = "limit"
	FieldLogin           = "login"
	FieldAuthHash        = "auth_hash"
	FieldEncryptionSalt  = "encryption_salt"
)

const (
	// MaxPageLimit bounds catalog and event pages.
	MaxPageLimit = 500
	// MaxMetadataPointerLen bounds the stored pointer; a CIDv1 URI is far
	// shorter.
	MaxMetadataPointerLen = 512
	// MaxLoginLen bounds account logins.
	MaxLoginLen = 64
)
