// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every bearer token accepted by the API.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, aud,
// exp, iat) and adds the role the caller acts under.
type Claims struct {
	jwt.RegisteredClaims

	// RoleID references the caller's role in the user_roles table.
	// Authorization rejects tokens whose role is missing or inactive.
	RoleID int64 `json:"role_id"`
}

// GetUserID extracts the user identifier from the "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token is the result of issuing or validating a bearer token.
type Token struct {
	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the caller identifier parsed from the "sub" claim.
	UserID int64 `json:"-"`

	// RoleID is a copy of the role_id claim.
	RoleID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
