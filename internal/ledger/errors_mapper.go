package ledger

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapReadError classifies a failed read response. Reads carry no
// write-rejection semantics; any non-2xx status means the store could not
// serve the request.
func mapReadError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode(), body)
}

// mapWriteError classifies a failed write response into the package's
// sentinel errors: 401 → unauthorized, 403 → declined by signer, anything
// else non-2xx → rejected.
func mapWriteError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrWriteDeclined, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrWriteRejected, resp.StatusCode(), body)
	}
}
