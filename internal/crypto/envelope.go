// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Envelope layout constants. AES-256-GCM with the standard 96-bit nonce and
// 128-bit tag.
const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
	SaltSize  = 16

	// CombinedOverhead is the size added by Encrypt: nonce + tag.
	CombinedOverhead = NonceSize + TagSize
	// DetachedOverhead is the size added by EncryptWithPassword: salt + nonce + tag.
	DetachedOverhead = SaltSize + NonceSize + TagSize
)

// Key is a 256-bit AES key.
type Key [KeySize]byte

// Envelope is an encrypted payload in one of the layouts named by [Shape].
type Envelope []byte

// Shape selects the byte layout of an [Envelope]. It is always stated by
// the caller and never guessed from the bytes.
type Shape int

const (
	// ShapeCombined is nonce(12) || ciphertext || tag(16), the layout of a
	// random-key envelope.
	ShapeCombined Shape = iota + 1
	// ShapeDetachedTag is salt(16) || nonce(12) || tag(16) || ciphertext,
	// the layout of a password-derived envelope.
	ShapeDetachedTag
)

func (s Shape) String() string {
	switch s {
	case ShapeCombined:
		return "combined"
	case ShapeDetachedTag:
		return "detached"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape maps the textual name of a shape back to its value.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "combined", "random", "key":
		return ShapeCombined, nil
	case "detached", "password":
		return ShapeDetachedTag, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// envelopeCodec is the private implementation of [EnvelopeCodec].
type envelopeCodec struct {
	random io.Reader
}

// NewEnvelopeCodec constructs an [EnvelopeCodec] that draws keys, nonces
// and salts from crypto/rand.
func NewEnvelopeCodec() EnvelopeCodec {
	return &envelopeCodec{random: rand.Reader}
}

// GenerateKey implements [EnvelopeCodec]. crypto/rand.Read does not return
// an error on supported platforms, so neither does this.
func (c *envelopeCodec) GenerateKey() Key {
	var key Key
	_, _ = rand.Read(key[:])
	return key
}

// Encrypt implements [EnvelopeCodec].
func (c *envelopeCodec) Encrypt(plaintext []byte, key Key) (Envelope, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends ciphertext||tag right after the nonce.
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt implements [EnvelopeCodec].
func (c *envelopeCodec) Decrypt(env Envelope, key Key, shape Shape) ([]byte, error) {
	nonce, sealed, ok := split(env, shape)
	if !ok {
		return nil, ErrDecryption
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrDecryption
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryption
	}
	return plaintext, nil
}

// DeriveKeyFromPassword implements [EnvelopeCodec].
func (c *envelopeCodec) DeriveKeyFromPassword(password, salt []byte, params KDFParams) (Key, error) {
	return params.derive(password, salt)
}

// EncryptWithPassword implements [EnvelopeCodec].
func (c *envelopeCodec) EncryptWithPassword(plaintext, password []byte, params KDFParams) (Envelope, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key, err := params.derive(password, salt)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	out := make([]byte, 0, DetachedOverhead+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ciphertext...)
	return out, nil
}

// DecryptWithPassword implements [EnvelopeCodec].
func (c *envelopeCodec) DecryptWithPassword(env Envelope, password []byte, params KDFParams) ([]byte, error) {
	if len(env) < DetachedOverhead {
		return nil, ErrDecryption
	}

	key, err := params.derive(password, env[:SaltSize])
	if err != nil {
		return nil, ErrDecryption
	}
	return c.Decrypt(env, key, ShapeDetachedTag)
}

// split returns the nonce and the ciphertext||tag input expected by
// cipher.AEAD.Open. For the detached shape a new slice is built so env is
// never written to.
func split(env Envelope, shape Shape) (nonce, sealed []byte, ok bool) {
	switch shape {
	case ShapeCombined:
		if len(env) < CombinedOverhead {
			return nil, nil, false
		}
		return env[:NonceSize], env[NonceSize:], true

	case ShapeDetachedTag:
		if len(env) < DetachedOverhead {
			return nil, nil, false
		}
		nonce = env[SaltSize : SaltSize+NonceSize]
		tag := env[SaltSize+NonceSize : DetachedOverhead]
		ciphertext := env[DetachedOverhead:]

		sealed = make([]byte, 0, len(ciphertext)+TagSize)
		sealed = append(sealed, ciphertext...)
		sealed = append(sealed, tag...)
		return nonce, sealed, true

	default:
		return nil, nil, false
	}
}

func newGCM(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// EncodeKeyMaterial renders a key the way it is stored on the ledger:
// 0x-prefixed lowercase hex.
func EncodeKeyMaterial(key Key) []byte {
	return []byte("0x" + hex.EncodeToString(key[:]))
}

// KeyFromMaterial parses key material read back from the ledger. Both the
// hex form written by [EncodeKeyMaterial] (with or without the 0x prefix)
// and a raw 32-byte key are accepted.
func KeyFromMaterial(material []byte) (Key, error) {
	var key Key

	text := bytes.TrimSpace(material)
	text = bytes.TrimPrefix(bytes.TrimPrefix(text, []byte("0x")), []byte("0X"))
	if len(text) == hex.EncodedLen(KeySize) {
		if _, err := hex.Decode(key[:], text); err == nil {
			return key, nil
		}
	}

	if len(material) == KeySize {
		copy(key[:], material)
		return key, nil
	}

	return Key{}, fmt.Errorf("%w: expected %d-byte key, got %d bytes", ErrInvalidKeyMaterial, KeySize, len(material))
}
