package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenart/go-art-registry/internal/config"
	"github.com/provenart/go-art-registry/internal/logger"
)

func newAuthService(duration time.Duration) AuthService {
	return NewAuthService(config.GatewayApp{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "art-registry-gateway",
		TokenDuration: duration,
	}, logger.Nop())
}

func TestAuthService_IssueAndParseToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(time.Hour)

	issued, err := svc.IssueToken(ctx, "0xA11CE")
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	parsed, err := svc.ParseToken(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "0xA11CE", parsed.Identity)
}

func TestAuthService_IssueToken_EmptyIdentity(t *testing.T) {
	svc := newAuthService(time.Hour)

	_, err := svc.IssueToken(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctx := context.Background()

	issued, err := newAuthService(-time.Minute).IssueToken(ctx, "0xA11CE")
	require.NoError(t, err)

	_, err = newAuthService(time.Hour).ParseToken(ctx, issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctx := context.Background()

	other := NewAuthService(config.GatewayApp{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())

	issued, err := other.IssueToken(ctx, "0xA11CE")
	require.NoError(t, err)

	_, err = newAuthService(time.Hour).ParseToken(ctx, issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newAuthService(time.Hour)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
