// SPDX-License-Identifier: Apache-2.0

// Package ledger provides the client-side abstraction over the remote
// append-only key-value ledger that stores artwork records.
//
// The primary abstraction is [Ledger], which decouples the registry from the
// underlying transport. The package ships an HTTP implementation
// ([NewHTTPLedger]) speaking the ledger gateway's wire contract; the
// production chain exposes the same get/set/availability surface.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapReadError and mapWriteError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrWriteDeclined] when the signer
// refuses a write).
package ledger

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_mock.go -package=mock

// Ledger defines transport-agnostic access to the remote key-value store.
// Implementations are responsible for serialisation, write authorization,
// and mapping transport-level failures to the sentinel values defined in
// this package.
type Ledger interface {
	// Get returns the value stored under key, or an empty slice when the
	// key is absent. Absence is never an error; errors indicate transport
	// or availability failures only.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. The remote store offers no
	// compare-and-swap: concurrent writers race and the last write wins.
	// Returns [ErrWriteDeclined] (wrapped) when the write was refused by
	// the signer, or [ErrWriteRejected] for any other failed write.
	Set(ctx context.Context, key string, value []byte) error

	// IsAvailable reports whether the remote store is reachable and
	// healthy. Callers use it to short-circuit reads to an empty result
	// instead of failing.
	IsAvailable(ctx context.Context) bool

	// Authorize obtains a write token for identity and stores it for all
	// subsequent Set calls.
	Authorize(ctx context.Context, identity string) error
}
