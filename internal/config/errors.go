package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing ledger address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unusable DSN or driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing signing or hashing keys.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidIPFSConfigs indicates no read gateways or publish URL.
	ErrInvalidIPFSConfigs = errors.New("invalid ipfs configuration")
	// ErrInvalidCryptoConfigs indicates unusable scrypt parameters.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidGatewayConfigs indicates a missing gateway address or pin token.
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
)
