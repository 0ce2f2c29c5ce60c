// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request carries no "Authorization" header at all.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
