package service

import (
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
)

// Services groups the ledger server's services.
type Services struct {
	AuthService    AuthService
	LedgerService  LedgerService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ledger := NewLedgerValidationService().Wrap(NewLedgerService(storages.LedgerRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, cfg.App, logger),
		LedgerService:  ledger,
		AppInfoService: appInfo,
	}, nil
}
