package main

import (
	"fmt"
	"os"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/blobstore"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/handler"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/server"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// The gateway is a local stand-in for a pinning service and its read
// gateways, so the marketplace runs end to end without third parties.
func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("content-gateway")
	cfg, err := config.GetGatewayConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.New("content-gateway", os.Stdout, cfg.App.LogLevel)

	blobs, err := blobstore.Open(cfg.Gateway.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening blob store")
	}
	defer blobs.Close()

	if cfg.Gateway.DataDir == "" {
		log.Warn().Msg("no data dir configured, content is kept in memory")
	}

	handlers, err := handler.NewGatewayHandlers(blobs, cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewGatewayServer(handlers, cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
