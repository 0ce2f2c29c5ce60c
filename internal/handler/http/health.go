// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/provenart/go-art-registry/internal/logger"
)

// health serves GET /api/health. Reports 200 only when the backing store
// answers a ping; clients use this to decide between live and offline mode.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EntryService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}
