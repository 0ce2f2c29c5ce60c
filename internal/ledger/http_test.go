package ledger

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenart/go-art-registry/internal/config"
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/models"
)

func newTestLedger(t *testing.T, handler http.Handler) Ledger {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	l, err := NewHTTPLedger(config.ClientLedger{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return l
}

func TestHTTPLedger_Get(t *testing.T) {
	ctx := context.Background()

	l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/ledger/artworks:index", r.URL.Path)
		w.Write([]byte(`["1-a"]`))
	}))

	value, err := l.Get(ctx, "artworks:index")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["1-a"]`), value)
}

func TestHTTPLedger_Get_AbsentKeyIsEmptyNotError(t *testing.T) {
	ctx := context.Background()

	l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	value, err := l.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestHTTPLedger_Get_RetriesServerErrors(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int64
	l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))

	value, err := l.Get(ctx, "flaky")
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), value)
	assert.Equal(t, int64(3), calls.Load())
}

func TestHTTPLedger_Get_GivesUpAfterRetries(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int64
	l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := l.Get(ctx, "down")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int64(getRetryLimit+1), calls.Load())
}

func TestHTTPLedger_SetRequiresAuthorize(t *testing.T) {
	ctx := context.Background()

	var putAuth string
	var body []byte
	l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/token":
			json.NewEncoder(w).Encode(models.TokenResponse{Token: "issued-token"})
		case "/api/ledger/artworks:record:1-a":
			assert.Equal(t, http.MethodPut, r.Method)
			putAuth = r.Header.Get("Authorization")
			body, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	require.NoError(t, l.Authorize(ctx, "0xA11CE"))
	require.NoError(t, l.Set(ctx, "artworks:record:1-a", []byte(`{"id":"1-a"}`)))

	assert.Equal(t, "Bearer issued-token", putAuth)
	assert.Equal(t, []byte(`{"id":"1-a"}`), body)
}

func TestHTTPLedger_Set_ErrorMapping(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "401 unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "403 declined by signer", status: http.StatusForbidden, wantErr: ErrWriteDeclined},
		{name: "500 rejected", status: http.StatusInternalServerError, wantErr: ErrWriteRejected},
		{name: "400 rejected", status: http.StatusBadRequest, wantErr: ErrWriteRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int64
			l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))

			err := l.Set(ctx, "k", []byte("v"))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int64(1), calls.Load(), "writes are never retried")
		})
	}
}

func TestHTTPLedger_IsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		assert.True(t, l.IsAvailable(ctx))
	})

	t.Run("unhealthy", func(t *testing.T) {
		l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		assert.False(t, l.IsAvailable(ctx))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		l, err := NewHTTPLedger(config.ClientLedger{HTTPAddress: url, RequestTimeout: time.Second}, logger.Nop())
		require.NoError(t, err)
		assert.False(t, l.IsAvailable(ctx))
	})
}

func TestHTTPLedger_Authorize_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("denied", func(t *testing.T) {
		l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		assert.ErrorIs(t, l.Authorize(ctx, "0xA11CE"), ErrUnauthorized)
	})

	t.Run("empty token", func(t *testing.T) {
		l := newTestLedger(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.TokenResponse{})
		}))
		assert.ErrorIs(t, l.Authorize(ctx, "0xA11CE"), ErrUnauthorized)
	})
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host gets scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url kept", raw: "https://ledger.example.com/", want: "https://ledger.example.com"},
		{name: "empty", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
