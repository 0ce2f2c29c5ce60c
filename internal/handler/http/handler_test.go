package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/mock"
	"github.com/provenart/go-art-registry/internal/service"
	"github.com/provenart/go-art-registry/models"
)

type handlerMocks struct {
	entries *mock.MockEntryService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		entries: mock.NewMockEntryService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		EntryService:   mocks.entries,
		AuthService:    mocks.auth,
		AppInfoService: mocks.appInfo,
	}, logger.Nop())

	return h.Init(), mocks
}

func TestHandler_GetEntry(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.entries.EXPECT().GetValue(gomock.Any(), "artworks:index").Return([]byte(`["1-a"]`), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/artworks:index", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["1-a"]`), body)
}

func TestHandler_GetEntry_AbsentKeyIsNoContent(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.entries.EXPECT().GetValue(gomock.Any(), "missing").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_GetEntry_StoreError(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.entries.EXPECT().GetValue(gomock.Any(), "broken").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/broken", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_PutEntry(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good-token").
		Return(models.Token{Identity: "0xA11CE"}, nil)
	mocks.entries.EXPECT().PutValue(gomock.Any(), "artworks:record:1-a", []byte(`{"id":"1-a"}`)).
		Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/ledger/artworks:record:1-a", bytes.NewReader([]byte(`{"id":"1-a"}`)))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_PutEntry_LogsWriterIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		entries: mock.NewMockEntryService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	var buf bytes.Buffer
	h := NewHandler(&service.Services{
		EntryService:   mocks.entries,
		AuthService:    mocks.auth,
		AppInfoService: mocks.appInfo,
	}, &logger.Logger{Logger: zerolog.New(&buf)})
	router := h.Init()

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good-token").
		Return(models.Token{Identity: "0xA11CE"}, nil)
	mocks.entries.EXPECT().PutValue(gomock.Any(), "k", []byte("v")).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/ledger/k", bytes.NewReader([]byte("v")))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), `"identity":"0xA11CE"`)
	assert.Contains(t, buf.String(), "ledger entry written")
}

func TestHandler_PutEntry_Unauthorized(t *testing.T) {
	tests := []struct {
		name   string
		header string
		parse  bool
	}{
		{name: "no header", header: ""},
		{name: "malformed header", header: "Bearer"},
		{name: "invalid token", header: "Bearer bad-token", parse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)

			if tt.parse {
				mocks.auth.EXPECT().ParseToken(gomock.Any(), "bad-token").
					Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/ledger/k", bytes.NewReader([]byte("v")))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestHandler_PutEntry_ValidationMapsToBadRequest(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good-token").
		Return(models.Token{Identity: "0xA11CE"}, nil)
	mocks.entries.EXPECT().PutValue(gomock.Any(), "k", gomock.Any()).
		Return(service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPut, "/api/ledger/k", bytes.NewReader([]byte("v")))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_IssueToken(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().IssueToken(gomock.Any(), "0xA11CE").
		Return(models.Token{SignedString: "signed-jwt"}, nil)

	body := bytes.NewReader([]byte(`{"identity":"0xA11CE"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed-jwt", resp.Token)
}

func TestHandler_IssueToken_BadJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.entries.EXPECT().Ping(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store down", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.entries.EXPECT().Ping(gomock.Any()).Return(assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandler_GetVersion(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VersionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "1.2.3", resp.Version)
}
