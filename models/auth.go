package models

// RegisterRequest creates an account. AuthHash and EncryptionSalt are hex.
type RegisterRequest struct {
	Login          string `json:"login"`
	Name           string `json:"name,omitempty"`
	AuthHash       string `json:"auth_hash"`
	EncryptionSalt string `json:"encryption_salt"`
}

// LoginRequest proves knowledge of the account password via its AuthHash.
type LoginRequest struct {
	Login    string `json:"login"`
	AuthHash string `json:"auth_hash"`
}

// ParamsRequest asks for the public salt of an account.
type ParamsRequest struct {
	Login string `json:"login"`
}

// ParamsResponse carries the salt needed to re-derive the account key.
type ParamsResponse struct {
	EncryptionSalt string `json:"encryption_salt"`
}

// AuthResponse is returned by register and login next to the
// Authorization header.
type AuthResponse struct {
	AccountID int64  `json:"account_id"`
	Login     string `json:"login"`
}
