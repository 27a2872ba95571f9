// Package utils holds small helpers shared by the ledger server, the CLI
// and the dev gateway: typed context keys, HMAC hashing, JSON responses,
// the resty client wrapper, JWT issuing and parsing, and trace ids.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they never collide with
// string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey stores the authenticated account id (int64) in a request
// context. The auth middleware sets it; handlers read it with
// [GetAccountIDFromContext].
var AccountIDCtxKey = contextKey("accountID")

// GetAccountIDFromContext returns the authenticated account id and whether
// one was present.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// WithAccountID returns a copy of ctx carrying accountID.
func WithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}
