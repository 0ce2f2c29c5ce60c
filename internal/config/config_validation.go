// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Intentionally permissive: the structured config serves both binaries, so
// per-binary requirements are enforced by the client and gateway views.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Ledger.HTTPAddress == "" || cfg.Ledger.RequestTimeout == 0 {
		return ErrInvalidLedgerConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Identity == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.Codec == CodecSealed && cfg.App.SealPassphrase == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *GatewayConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// Codec names accepted in App.Codec.
const (
	CodecBase64 = "base64"
	CodecSealed = "sealed"
)
