package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("salt lengths = %d, %d; want %d", len(s1), len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ")
	}
}

func TestDeriveAccountKey_Deterministic(t *testing.T) {
	svc := NewKeyChainService()
	salt := bytes.Repeat([]byte{0x01}, SaltSize)

	k1 := svc.DeriveAccountKey("password", salt)
	k2 := svc.DeriveAccountKey("password", salt)
	if len(k1) != 32 {
		t.Fatalf("account key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical account keys")
	}

	k3 := svc.DeriveAccountKey("password", bytes.Repeat([]byte{0x02}, SaltSize))
	if bytes.Equal(k1, k3) {
		t.Fatalf("expected different account keys for different salts")
	}
}

func TestAuthHash_DomainSeparated(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x11}, 32)

	a1 := svc.AuthHash(key, AuthDomain)
	a2 := svc.AuthHash(key, AuthDomain)
	if !bytes.Equal(a1, a2) {
		t.Fatalf("expected AuthHash to be deterministic")
	}
	if bytes.Equal(a1, svc.AuthHash(key, "other")) {
		t.Fatalf("expected AuthHash to differ across domains")
	}
	if bytes.Equal(a1, key) {
		t.Fatalf("AuthHash must not equal the account key")
	}
}
