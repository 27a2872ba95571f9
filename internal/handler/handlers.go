package handler

import (
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/handler/gateway"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/handler/http"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
)

// Handlers holds the transport handlers of one binary. The ledger server
// fills HTTP, the content gateway fills Gateway.
type Handlers struct {
	HTTP    *http.Handler
	Gateway *gateway.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}

func NewGatewayHandlers(store gateway.BlobStore, cfg config.Gateway, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating gateway handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{Gateway: gateway.NewHandler(store, cfg, logger)}, nil
}
