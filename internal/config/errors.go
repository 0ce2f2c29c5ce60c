package config

import "errors"

// Validation errors returned by the client and gateway config views when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidLedgerConfigs indicates invalid ledger connection settings
	// (for example, missing endpoint address or request timeout).
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty gateway DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing identity or token signing material).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates that the gateway has no listen
	// address configured on any transport.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
