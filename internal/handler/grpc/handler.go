// SPDX-License-Identifier: Apache-2.0

// Package grpc holds the gateway's gRPC transport handler. The service
// definition is not published yet; the handler exists so the server wiring
// and configuration surface are in place when it lands.
package grpc

import (
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/service"
)

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
