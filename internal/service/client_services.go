package service

import (
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
)

// ClientServices groups the services the CLI runs.
type ClientServices struct {
	AuthService      ClientAuthService
	PublishService   PublishService
	RetrievalService RetrievalService
	MarketService    MarketService
}

// ClientAdapters are the remote collaborators of the client services.
type ClientAdapters struct {
	Ledger    adapter.LedgerAdapter
	Publisher adapter.ContentPublisher
	Resolver  adapter.ContentResolver
}

func NewClientServices(storages *store.ClientStorages, adapters ClientAdapters, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	codec := crypto.NewEnvelopeCodec()

	return &ClientServices{
		AuthService:      NewClientAuthService(storages.SessionRepository, adapters.Ledger, crypto.NewKeyChainService(), cfg.Adapter.HTTPAddress, logger),
		PublishService:   NewPublishService(codec, adapters.Publisher, adapters.Ledger, cfg.KDF, logger),
		RetrievalService: NewRetrievalService(adapters.Ledger, adapters.Resolver, codec, cfg.KDF, logger),
		MarketService:    NewMarketService(adapters.Ledger, adapters.Resolver, storages.SessionRepository, logger),
	}
}
