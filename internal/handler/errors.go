// SPDX-License-Identifier: Apache-2.0

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither an HTTP
// nor a gRPC address is configured, leaving the gateway with no transport.
var errNoHandlersAreCreated = errors.New("no handlers are created")
