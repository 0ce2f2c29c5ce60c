// SPDX-License-Identifier: Apache-2.0

package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/utils"
)

// getEntry serves GET /api/ledger/{key}.
//
// Present keys return the raw stored bytes; absent keys return 204 with an
// empty body so clients can distinguish "no value" from transport failures
// without parsing anything.
func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	value, err := h.services.EntryService.GetValue(r.Context(), key)
	if err != nil {
		log.Err(err).Str("key", key).Msg("error reading ledger entry")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if len(value) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(value)
}

// putEntry serves PUT /api/ledger/{key}. The body is the opaque value.
// Requires a valid write token; the auth middleware has already placed the
// writer identity in the context.
func (h *Handler) putEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	value, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("key", key).Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	if err = h.services.EntryService.PutValue(r.Context(), key, value); err != nil {
		log.Err(err).Str("key", key).Msg("error writing ledger entry")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())
	log.Info().
		Str("key", key).
		Str("identity", identity).
		Msg("ledger entry written")

	w.WriteHeader(http.StatusNoContent)
}
