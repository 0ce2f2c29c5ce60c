// SPDX-License-Identifier: Apache-2.0

package registry

import "errors"

var (
	// ErrValidation reports malformed or missing input. It is always
	// returned before any remote call is made.
	ErrValidation = errors.New("validation failed")

	// ErrAuthorization reports that the caller's identity does not match
	// the artwork owner.
	ErrAuthorization = errors.New("identity is not the artwork owner")

	// ErrNotFound reports that the requested record does not exist on the
	// ledger.
	ErrNotFound = errors.New("artwork record not found")

	// ErrNotPending reports an attempted verdict on an artwork that has
	// already been judged. Status transitions are one-way and happen at
	// most once.
	ErrNotPending = errors.New("artwork already has a verdict")
)
