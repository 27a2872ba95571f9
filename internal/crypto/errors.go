package crypto

import "errors"

var (
	// ErrDecryption is the only error Decrypt reports. Wrong key, corrupted
	// ciphertext, a bad tag and a truncated envelope all look the same to
	// the caller.
	ErrDecryption = errors.New("decryption failed")

	ErrInvalidKeyMaterial = errors.New("invalid key material")
	ErrInvalidKDFParams   = errors.New("invalid key derivation parameters")
	ErrUnknownShape       = errors.New("unknown envelope shape")
)
