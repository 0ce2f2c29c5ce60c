package models

// TokenRequest is the body of POST /api/auth/token on the ledger gateway.
// The identity becomes the "sub" claim of the issued write token.
type TokenRequest struct {
	// Identity is the writer identity requesting ledger write access,
	// e.g. "0xA1B2...". Required.
	Identity string `json:"identity"`
}

// TokenResponse carries an issued write token back to the caller.
type TokenResponse struct {
	// Token is the compact JWS string to present as a bearer credential
	// on PUT requests.
	Token string `json:"token"`
}

// VersionResponse is the body of GET /api/version on the ledger gateway.
type VersionResponse struct {
	// Version is the semantic version of the running gateway.
	Version string `json:"version"`
}
