// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/service"
)

// Handler is the root HTTP transport handler of the ledger gateway.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
