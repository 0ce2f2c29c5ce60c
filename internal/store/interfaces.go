// SPDX-License-Identifier: Apache-2.0

// Package store holds the persistence layers of both binaries: the client's
// in-memory artwork cache and its durable SQLite snapshot copy, and the
// gateway's PostgreSQL ledger-entry repository.
package store

import (
	"context"

	"github.com/provenart/go-art-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository is the client's durable copy of the last good refresh.
// It exists so the gallery can warm-start read-only when the ledger is
// unreachable; it is never the source of truth.
type SnapshotRepository interface {
	// ReplaceSnapshot atomically replaces the stored snapshot with
	// artworks.
	ReplaceSnapshot(ctx context.Context, artworks []models.Artwork) error

	// LoadSnapshot returns the stored snapshot, empty when none has been
	// persisted yet.
	LoadSnapshot(ctx context.Context) ([]models.Artwork, error)
}

// EntryRepository is the gateway's key-value backing store for ledger
// entries. Values are opaque bytes; keys are opaque strings.
type EntryRepository interface {
	// GetEntry returns the value stored under key, or nil when the key is
	// absent. Absence is not an error.
	GetEntry(ctx context.Context, key string) ([]byte, error)

	// PutEntry stores value under key, overwriting any previous value.
	// The ledger's weak-consistency contract is last write wins.
	PutEntry(ctx context.Context, key string, value []byte) error

	// Ping reports backing store liveness for the health probe.
	Ping(ctx context.Context) error
}
