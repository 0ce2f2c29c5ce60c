// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/provenart/go-art-registry/internal/config"
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/utils"
	"github.com/provenart/go-art-registry/models"
)

// authService is the concrete implementation of AuthService.
// Write tokens are plain HMAC-SHA256 JWTs: the gateway is a trusted
// front-door for the demo chain and performs no identity proof beyond
// binding the caller-declared identity into the subject claim.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify write tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService with security parameters from cfg.
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.GatewayApp, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken implements AuthService.
func (s *authService) IssueToken(ctx context.Context, identity string) (models.Token, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return models.Token{}, fmt.Errorf("identity is required: %w", ErrInvalidDataProvided)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, identity, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("issue write token: %w", err)
	}

	s.logger.Info().Str("identity", identity).Msg("write token issued")
	return token, nil
}

// ParseToken implements AuthService.
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}
