// SPDX-License-Identifier: Apache-2.0

// Package service implements the gateway's business layer: opaque key-value
// access over the entry repository, write-token issuance and validation, and
// build metadata for the version endpoint.
package service

import (
	"context"

	"github.com/provenart/go-art-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EntryService exposes the ledger's key-value surface to transport handlers.
type EntryService interface {
	// GetValue returns the value under key, nil when absent.
	GetValue(ctx context.Context, key string) ([]byte, error)

	// PutValue stores value under key, last write wins.
	PutValue(ctx context.Context, key string, value []byte) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// AuthService issues and validates write tokens.
type AuthService interface {
	// IssueToken returns a signed write token for identity.
	IssueToken(ctx context.Context, identity string) (models.Token, error)

	// ParseToken validates tokenString and returns the parsed token with
	// the writer identity extracted. Returns [ErrTokenIsExpiredOrInvalid]
	// (wrapped) on any validation failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	// GetAppVersion returns the gateway build version string.
	GetAppVersion(ctx context.Context) string
}
