package ledger

import "errors"

var (
	// ErrWriteRejected indicates the remote store failed or refused a
	// write for any reason other than an explicit signer decline.
	ErrWriteRejected = errors.New("ledger write rejected")
	// ErrWriteDeclined indicates the signer explicitly declined to
	// authorize the write. A sub-case of rejection that callers surface
	// differently to the user.
	ErrWriteDeclined = errors.New("ledger write declined by signer")
	// ErrUnauthorized indicates the client holds no valid write token.
	ErrUnauthorized = errors.New("ledger client unauthorized")
	// ErrUnavailable indicates the remote store could not be reached.
	ErrUnavailable = errors.New("ledger unavailable")
)
