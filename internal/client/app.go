package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/store"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

type App struct {
	Services *service.ClientServices
	Config   *config.ClientConfig

	session  models.Session
	loggedIn bool

	storages *store.ClientStorages
	logger   *logger.Logger
}

// NewApp opens the session database, builds the adapters and services and
// restores the saved session if there is one. Not being logged in is not an
// error; commands that need an account call [App.RequireSession].
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ledger, err := adapter.NewHTTPLedgerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create ledger adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, service.ClientAdapters{
		Ledger:    ledger,
		Publisher: adapter.NewIPFSPublisher(cfg.IPFS, log),
		Resolver:  adapter.NewGatewayResolver(cfg.IPFS, log),
	}, cfg, log)

	app := &App{
		Services: services,
		Config:   cfg,
		storages: storages,
		logger:   log,
	}

	session, err := services.AuthService.Restore(ctx)
	switch {
	case err == nil:
		app.session = session
		app.loggedIn = true
		log.Debug().Str("login", session.Login).Msg("session restored")
	case errors.Is(err, service.ErrNotLoggedIn):
		log.Debug().Msg("no saved session")
	default:
		storages.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return app, nil
}

// Session returns the restored session and whether there is one.
func (a *App) Session() (models.Session, bool) {
	return a.session, a.loggedIn
}

// RequireSession returns the restored session or service.ErrNotLoggedIn.
func (a *App) RequireSession() (models.Session, error) {
	if !a.loggedIn {
		return models.Session{}, service.ErrNotLoggedIn
	}
	return a.session, nil
}

// SetSession records a session obtained by login or register during this
// run.
func (a *App) SetSession(session models.Session) {
	a.session = session
	a.loggedIn = true
}

func (a *App) Close() error {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("close local storage")
		return err
	}
	return nil
}
