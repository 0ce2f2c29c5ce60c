// Package codec provides payload codecs for artwork content.
//
// A Codec turns the caller-supplied source text into the opaque payload
// string stored on the ledger, and back. The default [Base64Codec] is an
// intentionally reversible placeholder: it stands in for the external
// homomorphic-encryption pipeline that produces real cipher text in
// production, and must not be mistaken for a cryptographic boundary.
// [SealedCodec] offers actual at-rest sealing for deployments that want it.
package codec

import (
	"encoding/base64"
	"fmt"
)

// Codec encodes artwork source text into the payload form stored on the
// ledger and decodes it back. Encode then Decode must round-trip any input
// without loss.
type Codec interface {
	// Encode converts source text into the payload string.
	Encode(source string) (string, error)

	// Decode reverses Encode. Returns an error if the payload was not
	// produced by this codec or has been corrupted.
	Decode(payload string) (string, error)
}

// Base64Codec is the placeholder codec: standard base64, no secrecy.
// It exists so that the payload column always carries encoded bytes with a
// documented, reversible transform.
type Base64Codec struct{}

// NewBase64Codec returns the placeholder base64 codec.
func NewBase64Codec() *Base64Codec {
	return &Base64Codec{}
}

// Encode implements [Codec] using standard base64 encoding.
func (c *Base64Codec) Encode(source string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(source)), nil
}

// Decode implements [Codec]. Returns an error if payload is not valid
// base64.
func (c *Base64Codec) Decode(payload string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode base64 payload: %w", err)
	}

	return string(raw), nil
}
