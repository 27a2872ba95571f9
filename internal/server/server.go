package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/handler"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
)

type server struct {
	httpServers []*httpServer
	logger      *logger.Logger
}

// NewServer builds the ledger API server.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServers: []*httpServer{
			newHTTPServer("ledger", handlers.HTTP.Init(), cfg.HTTPAddress, cfg.RequestTimeout, logger),
		},
		logger: logger,
	}, nil
}

// NewGatewayServer builds the content gateway server. Uploads can be
// large, so only the header read is bounded.
func NewGatewayServer(handlers *handler.Handlers, cfg config.Gateway, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating gateway server...")

	if handlers == nil || handlers.Gateway == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServers: []*httpServer{
			newHTTPServer("gateway", handlers.Gateway.Init(), cfg.HTTPAddress, 0, logger),
		},
		logger: logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("Error running server")
	}
}

func (s *server) Shutdown() {
	for _, srv := range s.httpServers {
		srv.Shutdown()
	}
}

// run serves until SIGTERM, SIGINT or SIGQUIT, or until a listener fails.
func (s *server) run() error {
	if len(s.httpServers) == 0 {
		return errNoServersAreCreated
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.serve(ctx)
}

func (s *server) serve(ctx context.Context) error {
	failed := make(chan error, len(s.httpServers))
	for _, srv := range s.httpServers {
		go func() {
			if err := srv.RunServer(); err != nil {
				failed <- fmt.Errorf("%s server: %w", srv.name, err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-failed:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
