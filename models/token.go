package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token used to authorize ledger writes.
//
// It embeds [jwt.Token] for low-level operations (signing, parsing) and
// [jwt.RegisteredClaims] for standard claim access. SignedString holds the
// compact serialized form ready to be sent as a bearer credential.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON because only the compact string form is
	// meaningful outside the gateway process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the writer identity extracted from the "sub" claim.
	Identity string `json:"-"`
}

// GetIdentity extracts the writer identity from the token's "sub" claim.
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetIdentity() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting identity from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("empty identity in token subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
