package store

import "errors"

var (
	// ErrSnapshotUnavailable indicates the client's local snapshot
	// database could not be read.
	ErrSnapshotUnavailable = errors.New("local snapshot unavailable")
)
