// Package gateway serves the local content gateway: a pinning endpoint
// compatible with the one the publisher talks to, and a read path shaped
// like a public IPFS gateway.
package gateway

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/blobstore"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/config"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
)

// BlobStore is the part of [blobstore.Store] the gateway uses.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte) (blobstore.Pin, error)
	Get(ctx context.Context, id adapter.ContentID) ([]byte, error)
}

type Handler struct {
	store    BlobStore
	pinToken string

	logger *logger.Logger
}

func NewHandler(store BlobStore, cfg config.Gateway, logger *logger.Logger) *Handler {
	logger.Info().Msg("gateway handler created")
	return &Handler{
		store:    store,
		pinToken: cfg.PinToken,
		logger:   logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RequestID, h.withLogger)

	router.With(h.requirePinToken).Post("/pinning/pinFileToIPFS", h.pinFile)
	router.Get("/ipfs/{cid}", h.getContent)
	router.Head("/ipfs/{cid}", h.getContent)

	return router
}

// withLogger attaches a child logger carrying chi's request id.
func (h *Handler) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path)
		})
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
