// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-clean-architecture/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenParams describes a bearer token to be minted by [GenerateJWTToken].
type TokenParams struct {
	Issuer   string
	Audience string
	SignKey  string
	UserID   int64
	RoleID   int64
	Duration time.Duration
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): the intended recipient, defaults to the issuer
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus Duration
//   - role_id        : the role the caller acts under
//
// Issuer, SignKey and a non-zero Duration are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "my-service", SignKey: "secret", UserID: 42, RoleID: 1, Duration: time.Hour,
//	})
func GenerateJWTToken(params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Duration == 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	audience := params.Audience
	if audience == "" {
		audience = params.Issuer
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   strconv.FormatInt(params.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		RoleID: params.RoleID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Claims:       claims,
		SignedString: tokenString,
		UserID:       params.UserID,
		RoleID:       params.RoleID,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method must be HS256
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Audience (aud) claim check against tokenAudience
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service", "my-service")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, tokenAudience string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		Claims:       *claims,
		SignedString: tokenString,
		UserID:       userID,
		RoleID:       claims.RoleID,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
