package config

import (
	"fmt"
	"time"
)

// GatewayApp holds gateway-side application settings.
type GatewayApp struct {
	// TokenSignKey signs and verifies write tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim on issued write tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued write tokens.
	TokenDuration time.Duration
	// Version is exposed via /api/version.
	Version string
}

// GatewayDB contains database connection settings for the gateway.
type GatewayDB struct {
	// DSN is the PostgreSQL connection string for the ledger entries table.
	DSN string
}

// GatewayStorage groups gateway storage backend settings.
type GatewayStorage struct {
	// DB holds database settings.
	DB GatewayDB
}

// GatewayConfig is the top-level gateway configuration assembled from
// [StructuredConfig].
type GatewayConfig struct {
	// App contains token and version settings.
	App GatewayApp
	// Storage contains storage settings.
	Storage GatewayStorage
	// Server contains listen addresses and inbound timeouts.
	Server Server
}

// GetGatewayConfig builds and validates a gateway-specific config view from
// the merged structured configuration.
func GetGatewayConfig() (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	gatewayCfg := &GatewayConfig{
		App: GatewayApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Storage: GatewayStorage{
			DB: GatewayDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Server: cfg.Server,
	}

	return gatewayCfg, gatewayCfg.validate()
}
