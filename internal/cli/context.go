package cli

import (
	"context"
	"strings"
	"sync"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/client"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// globalFlags are the persistent flags of the root command. Non-empty
// values override the loaded configuration.
type globalFlags struct {
	configPath string
	ledger     string
	gateways   []string
	publishURL string
	publishJWT string
	db         string
	logFile    string
	verbose    bool
}

type commandContext struct {
	flags globalFlags
	build models.AppBuildInfo

	configOnce sync.Once
	config     *config.ClientConfig
	configErr  error

	loggerOnce sync.Once
	log        *logger.Logger
}

func newCommandContext(build models.AppBuildInfo) *commandContext {
	return &commandContext{build: build}
}

func (c *commandContext) ensureConfig() (*config.ClientConfig, error) {
	c.configOnce.Do(func() {
		cfg, err := config.GetClientConfig(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		c.flags.apply(cfg)
		c.config = cfg
	})
	return c.config, c.configErr
}

func (f globalFlags) apply(cfg *config.ClientConfig) {
	if f.ledger != "" {
		cfg.Adapter.HTTPAddress = f.ledger
	}
	if len(f.gateways) > 0 {
		cfg.IPFS.Gateways = f.gateways
	}
	if f.publishURL != "" {
		cfg.IPFS.PublishURL = f.publishURL
	}
	if f.publishJWT != "" {
		cfg.IPFS.PublishJWT = f.publishJWT
	}
	if f.db != "" {
		cfg.Storage.DB.DSN = f.db
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
}

func (c *commandContext) logger() *logger.Logger {
	c.loggerOnce.Do(func() {
		level := "info"
		if c.config != nil && c.config.LogLevel != "" {
			level = c.config.LogLevel
		}
		c.log = logger.NewClientLogger("marketplace", c.flags.logFile, level)
	})
	return c.log
}

// withApp opens the client runtime for the duration of fn.
func (c *commandContext) withApp(ctx context.Context, fn func(*client.App) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	app, err := client.NewApp(ctx, cfg, c.logger())
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(app)
}
