package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/params", h.params)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/assets", h.listAssets)
		r.Get("/api/assets/count", h.assetCount)
		r.Get("/api/assets/{id}", h.getAsset)

		r.Get("/api/accounts/{id}/assets/{assetID}", h.ownership)
		r.Get("/api/accounts/{id}/pending", h.pending)
		r.Get("/api/ledger/balance", h.balance)
		r.Get("/api/events", h.events)
	})

	// routes acting on behalf of the authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/assets", h.createAsset)
		r.Post("/api/assets/{id}/purchase", h.purchase)
		r.Get("/api/assets/{id}/key", h.encryptedKey)
		r.Post("/api/payouts/withdraw", h.withdraw)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
