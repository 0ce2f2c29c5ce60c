// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the gateway router.
//
// Reads are open: any client may fetch the index, records, health, and
// version. Writes require a bearer write token so that only callers who
// declared an identity can mutate the ledger.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/token", h.issueToken)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getVersion)
		r.Get("/api/ledger/{key}", h.getEntry)
	})

	// write routes behind the token check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/api/ledger/{key}", h.putEntry)
	})

	return router
}
