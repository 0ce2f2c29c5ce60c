package models

import (
	"strings"
	"time"
)

// Artwork is a single submission in the registry.
// The payload is stored encoded and opaque to the ledger: neither the ledger
// gateway nor the chain ever interprets it. Everything except Status is
// immutable after creation.
type Artwork struct {
	// ID is the client-generated unique identifier of the submission,
	// formatted as "<epoch_ms>-<suffix>". It doubles as the ledger key
	// suffix and is never reused.
	ID string `json:"id"`

	// Payload is the encoded cipher text of the artwork content.
	// The registry treats it as an opaque string; only the codec that
	// produced it can reverse it.
	Payload string `json:"payload"`

	// CreatedAt is the creation timestamp in unix seconds, stamped by the
	// submitting client. Never modified afterwards.
	CreatedAt int64 `json:"createdAt"`

	// Owner is the identity of the submitter. Authorization checks compare
	// owners case-insensitively.
	Owner string `json:"owner"`

	// Label is the human-readable title, set at creation and immutable.
	Label string `json:"label"`

	// Status is the authenticity verdict. It starts at StatusPending and
	// may move exactly once, to StatusAuthentic or StatusForgery.
	Status Status `json:"status"`
}

// OwnedBy reports whether identity matches the artwork owner.
// Comparison is case-insensitive so checksummed and lowercased forms of the
// same identity are treated as equal.
func (a Artwork) OwnedBy(identity string) bool {
	return strings.EqualFold(strings.TrimSpace(identity), strings.TrimSpace(a.Owner))
}

// Created returns CreatedAt as a time.Time in the local zone.
func (a Artwork) Created() time.Time {
	return time.Unix(a.CreatedAt, 0)
}
