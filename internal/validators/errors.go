package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAccountID       = errors.New("invalid account ID")
	ErrInvalidAssetID         = errors.New("invalid asset ID")
	ErrEmptyMetadataPointer   = errors.New("metadata pointer is required")
	ErrEmptyEncryptedKey      = errors.New("encrypted key is required")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidLimit           = errors.New("invalid page limit")
	ErrEmptyLogin             = errors.New("login is required")
	ErrInvalidLogin           = errors.New("invalid login")
	ErrInvalidAuthHash        = errors.New("invalid auth hash")
	ErrInvalidEncryptionSalt  = errors.New("invalid encryption salt")
	ErrMetadataPointerTooLong = errors.New("metadata pointer is too long")
)
