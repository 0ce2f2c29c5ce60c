// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/provenart/go-art-registry/internal/config"
	"github.com/provenart/go-art-registry/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService from the gateway config.
func NewAppInfoService(cfg config.GatewayApp, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
