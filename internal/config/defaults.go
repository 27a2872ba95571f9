package config

import "time"

// DefaultGateways are the public read gateways, tried in this order.
var DefaultGateways = []string{
	"https://gateway.pinata.cloud",
	"https://ipfs.io",
	"https://dweb.link",
}

const (
	DefaultPublishURL     = "https://api.pinata.cloud"
	DefaultLedgerAddress  = "localhost:8080"
	DefaultServerAddress  = "localhost:8080"
	DefaultGatewayAddress = "localhost:5001"
	DefaultClientDSN      = "marketplace.db"
	DefaultTokenIssuer    = "secure-ipfs-marketplace"

	DefaultMaxContentSize = 256 << 20
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
		},
		Storage: Storage{
			DB:     DB{Driver: DriverPostgres},
			Client: ClientDB{DSN: DefaultClientDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultLedgerAddress,
			RequestTimeout: 30 * time.Second,
		},
		IPFS: IPFS{
			PublishURL:     DefaultPublishURL,
			Gateways:       append([]string(nil), DefaultGateways...),
			RequestTimeout: time.Minute,
			MaxContentSize: DefaultMaxContentSize,
		},
		Crypto: Crypto{
			ScryptN: 16384,
			ScryptR: 8,
			ScryptP: 1,
		},
		Gateway: Gateway{
			HTTPAddress: DefaultGatewayAddress,
		},
	}
}
