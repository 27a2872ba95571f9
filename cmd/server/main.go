package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/handler"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/server"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("ledger-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.New("ledger-server", os.Stdout, cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
