// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/provenart/go-art-registry/internal/config"
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/store"
)

// Services bundles the gateway's business services for transport wiring.
type Services struct {
	EntryService   EntryService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires all gateway services over the given entry repository.
func NewServices(entries store.EntryRepository, cfg config.GatewayApp, logger *logger.Logger) *Services {
	return &Services{
		EntryService:   NewEntryService(entries, logger),
		AuthService:    NewAuthService(cfg, logger),
		AppInfoService: NewAppInfoService(cfg, logger),
	}
}
