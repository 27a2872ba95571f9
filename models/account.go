package models

import "time"

// Account is a ledger identity. It plays the part of a wallet address:
// assets record their creator by AccountID, ownership and pending payouts
// are keyed by it.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	AccountID int64 `json:"account_id"`

	// Login is the unique account login used to authenticate.
	Login string `json:"login"`

	// Name is an optional display name shown next to listed assets.
	Name string `json:"name,omitempty"`

	// AuthHash is the client-derived login proof. The ledger stores only
	// an HMAC of it and never returns it.
	AuthHash string `json:"auth_hash,omitempty"`

	// EncryptionSalt is the public Argon2id salt the client needs to
	// re-derive its account key on login.
	EncryptionSalt string `json:"encryption_salt,omitempty"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Session is the client-side record of a logged-in account.
type Session struct {
	Login     string
	AccountID int64
	Token     string
	LedgerURL string
	UpdatedAt time.Time
}

// TableName returns the name of the client database table that keeps the
// current session.
func (s Session) TableName() string {
	return "sessions"
}
