// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/argon2"
)

// AuthDomain separates the login hash from any other use of the account key.
const AuthDomain = "marketplace-ledger-auth"

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

// GenerateSalt implements [KeyChainService]. The salt is public and is
// stored by the ledger next to the account.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveAccountKey implements [KeyChainService] with Argon2id.
func (k *keyChainService) DeriveAccountKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// AuthHash implements [KeyChainService]. It computes
// SHA-256(accountKey ‖ domain).
func (k *keyChainService) AuthHash(accountKey []byte, domain string) []byte {
	h := sha256.New()
	h.Write(accountKey)
	h.Write([]byte(domain))
	return h.Sum(nil)
}
