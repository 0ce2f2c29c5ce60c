// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrInvalidDataProvided reports a malformed request reaching the
	// business layer.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmptyKey reports a ledger operation without a key.
	ErrEmptyKey = errors.New("ledger key must not be empty")

	// ErrTokenIsExpiredOrInvalid reports a write token that failed
	// validation for any reason.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
