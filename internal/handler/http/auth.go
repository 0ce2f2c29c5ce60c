// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/models"
)

// issueToken serves POST /api/auth/token.
//
// The gateway is a trusted demo front-door: it binds the caller-declared
// identity into a signed write token without any further identity proof.
// A production chain would verify a wallet signature here instead.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON in token request")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), req.Identity)
	if err != nil {
		log.Err(err).Msg("error issuing write token")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.TokenResponse{Token: token.SignedString})
}
