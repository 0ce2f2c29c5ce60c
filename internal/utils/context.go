// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP client
// initialization, JWT token generation and validation, and artwork id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated writer identity
// in the context. Used together with GetIdentityFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, "0xA1B2")
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the writer identity from the context.
//
// Returns the identity string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetIdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(string)
	return identity, ok
}
