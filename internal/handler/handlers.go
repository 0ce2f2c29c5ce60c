// SPDX-License-Identifier: Apache-2.0

// Package handler assembles the gateway's transport handlers. A handler is
// created per enabled transport; enabling none is a fatal misconfiguration.
package handler

import (
	"github.com/provenart/go-art-registry/internal/config"
	"github.com/provenart/go-art-registry/internal/handler/grpc"
	"github.com/provenart/go-art-registry/internal/handler/http"
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
