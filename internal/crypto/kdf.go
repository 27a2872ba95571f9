// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// KDFParams are the scrypt cost parameters used for password-derived
// envelopes. They are not stored in the envelope, so the reader must use
// the same values as the writer.
type KDFParams struct {
	N      int `json:"n"`
	R      int `json:"r"`
	P      int `json:"p"`
	KeyLen int `json:"key_len"`
}

// DefaultKDFParams returns N=16384, r=8, p=1 with a 32-byte output, the
// parameters the file preparation tool has always used.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		N:      16384,
		R:      8,
		P:      1,
		KeyLen: KeySize,
	}
}

// Validate checks that the parameters can produce an AES-256 key.
func (p KDFParams) Validate() error {
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		return fmt.Errorf("%w: N must be a power of two greater than 1, got %d", ErrInvalidKDFParams, p.N)
	}
	if p.R <= 0 || p.P <= 0 {
		return fmt.Errorf("%w: r and p must be positive", ErrInvalidKDFParams)
	}
	if p.KeyLen != KeySize {
		return fmt.Errorf("%w: key length must be %d, got %d", ErrInvalidKDFParams, KeySize, p.KeyLen)
	}
	return nil
}

func (p KDFParams) derive(password, salt []byte) (Key, error) {
	if err := p.Validate(); err != nil {
		return Key{}, err
	}

	raw, err := scrypt.Key(password, salt, p.N, p.R, p.P, p.KeyLen)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %w", ErrInvalidKDFParams, err)
	}

	var key Key
	copy(key[:], raw)
	return key, nil
}
