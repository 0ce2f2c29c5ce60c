package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/provenart/go-art-registry/internal/config"
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/utils"
	"github.com/provenart/go-art-registry/models"
)

const (
	getRetryBase  = 100 * time.Millisecond
	getRetryLimit = 3
)

type httpLedger struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPLedger constructs an HTTP implementation of [Ledger] speaking the
// ledger gateway's wire contract. It normalises and validates the base URL
// from ledgerCfg.HTTPAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if ledgerCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPLedger(ledgerCfg config.ClientLedger, logger *logger.Logger) (Ledger, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(ledgerCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(ledgerCfg.RequestTimeout)

	return &httpLedger{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [Ledger]. It fetches GET /api/ledger/{key} and returns the
// raw body; an absent key yields an empty body, never an error. Transient
// transport failures are retried with fibonacci backoff since reads are
// idempotent.
func (h *httpLedger) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	backoff := retry.WithMaxRetries(getRetryLimit, retry.NewFibonacci(getRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := h.client.R().
			SetContext(ctx).
			Get("/api/ledger/" + url.PathEscape(key))
		if err != nil {
			return retry.RetryableError(fmt.Errorf("ledger get request: %w", err))
		}
		if err = mapReadError(resp); err != nil {
			if resp.StatusCode() >= http.StatusInternalServerError {
				return retry.RetryableError(err)
			}
			return err
		}

		value = resp.Body()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set implements [Ledger]. It PUTs value to /api/ledger/{key} with the
// stored bearer token. Writes are not retried: the remote store offers no
// idempotency tokens and a repeated write could mask an interleaved one.
func (h *httpLedger) Set(ctx context.Context, key string, value []byte) error {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(value)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}

	resp, err := req.Put("/api/ledger/" + url.PathEscape(key))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteRejected, err)
	}

	return mapWriteError(resp)
}

// IsAvailable implements [Ledger]. It probes GET /api/health and reports
// whether the gateway answered 2xx. Any transport failure means unavailable.
func (h *httpLedger) IsAvailable(ctx context.Context) bool {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return false
	}

	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

// Authorize implements [Ledger]. It POSTs identity to /api/auth/token and
// stores the issued bearer token for all subsequent Set calls.
func (h *httpLedger) Authorize(ctx context.Context, identity string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{Identity: identity}).
		Post("/api/auth/token")
	if err != nil {
		return fmt.Errorf("authorize request: %w", err)
	}
	if err = mapWriteError(resp); err != nil {
		return err
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if tr.Token == "" {
		return fmt.Errorf("%w: empty token issued", ErrUnauthorized)
	}

	h.token = strings.TrimSpace(tr.Token)
	return nil
}
