package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes HMAC-SHA256 of data under hashKey and returns it hex
// encoded. The ledger stores HashString(authHash, passwordHashKey) instead
// of the auth hash the client sends.
//
// Example usage:
//
//	stored := utils.HashString(req.AuthHash, cfg.App.PasswordHashKey)
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// EqualHashes compares two hex digests in constant time.
func EqualHashes(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
