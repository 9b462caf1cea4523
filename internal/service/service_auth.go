// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/utils"
	"github.com/MKhiriev/go-clean-architecture/models"
)

// authService is the concrete implementation of AuthService.
// Tokens are issued elsewhere; this service only validates them and checks
// the role they carry.
type authService struct {
	// roleService resolves the role_id claim during authorization.
	roleService RoleService

	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim.
	tokenIssuer string

	// tokenAudience is the expected "aud" claim. Falls back to tokenIssuer.
	tokenAudience string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// validation parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(roleService RoleService, cfg config.Auth, logger *logger.Logger) AuthService {
	audience := cfg.TokenAudience
	if audience == "" {
		audience = cfg.TokenIssuer
	}

	return &authService{
		roleService:   roleService,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: audience,
		logger:        logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// Signature, algorithm, issuer, audience and expiry are all checked. Any
// failure is normalised to ErrTokenIsExpiredOrInvalid so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// Authorize rejects tokens whose role is unknown or inactive.
func (a *authService) Authorize(ctx context.Context, token models.Token) error {
	role, err := a.roleService.GetByID(ctx, token.RoleID)
	if errors.Is(err, ErrRoleNotFound) {
		return fmt.Errorf("%w: %d", ErrRoleUnknown, token.RoleID)
	}
	if err != nil {
		return err
	}

	if !role.IsActive {
		return fmt.Errorf("%w: %s", ErrRoleInactive, role.RoleName)
	}

	return nil
}
