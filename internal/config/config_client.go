package config

import (
	"fmt"
	"time"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
)

// ClientAdapter holds the ledger endpoint used by the CLI.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the CLI's view of [StructuredConfig].
type ClientConfig struct {
	Version  string
	LogLevel string
	Adapter  ClientAdapter
	IPFS     IPFS
	KDF      crypto.KDFParams
	Storage  ClientStorage
}

// GetClientConfig builds the client configuration from environment
// variables, the JSON file at jsonPath (if any) and defaults. Flags are
// owned by the CLI commands.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Version:  cfg.App.Version,
		LogLevel: cfg.App.LogLevel,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		IPFS: cfg.IPFS,
		KDF:  cfg.Crypto.KDFParams(),
		Storage: ClientStorage{
			DB: cfg.Storage.Client,
		},
	}

	return clientCfg, clientCfg.validate()
}

// KDFParams converts the scrypt settings into codec parameters.
func (c Crypto) KDFParams() crypto.KDFParams {
	return crypto.KDFParams{
		N:      c.ScryptN,
		R:      c.ScryptR,
		P:      c.ScryptP,
		KeyLen: crypto.KeySize,
	}
}
