// SPDX-License-Identifier: Apache-2.0

// Package http implements the HTTP transport layer of the ledger gateway.
// It provides middleware, route handlers, and request/response utilities for
// the gateway's REST API. Authentication and logging concerns are handled at
// this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/service"
	"github.com/provenart/go-art-registry/internal/utils"
)

// auth enforces write-token authentication.
//
// It extracts the bearer token from the Authorization header, validates it
// via [service.AuthService.ParseToken], and on success stores the writer
// identity in the request context under [utils.IdentityCtxKey] before
// delegating to the next handler. Requests without a header, with a
// malformed header, or with an invalid or expired token are rejected with
// HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Err(err).Msg("token rejected")
			} else {
				log.Err(err).Msg("error occurred during parsing token")
			}
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Downstream handlers read the writer identity from the context
		// instead of re-parsing the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, token.Identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
