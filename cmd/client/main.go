package main

import (
	"context"
	"os"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/cli"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	os.Exit(cli.Execute(context.Background(), build, os.Args[1:]))
}
