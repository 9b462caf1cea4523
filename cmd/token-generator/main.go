// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command token-generator mints a development bearer token signed with the
// server's auth configuration.
//
// Usage:
//
//	token-generator -user 42 -role 1 -- -token-sign-key secret -token-issuer clean-architecture
//
// Flags after "--" are handled like the server's own flags, so the sign key,
// issuer, audience and duration can equally come from the environment, the
// .env file or a JSON config.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/utils"
)

const defaultTokenDuration = time.Hour

func main() {
	log := logger.NewLogger("token-generator")

	fs := flag.NewFlagSet("token-generator", flag.ExitOnError)
	userID := fs.Int64("user", 1, "user id placed in the sub claim")
	roleID := fs.Int64("role", 1, "role id placed in the role_id claim")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.GetStructuredConfigFromArgs(fs.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	duration := cfg.Auth.TokenDuration
	if duration == 0 {
		duration = defaultTokenDuration
	}

	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   cfg.Auth.TokenIssuer,
		Audience: cfg.Auth.TokenAudience,
		SignKey:  cfg.Auth.TokenSignKey,
		UserID:   *userID,
		RoleID:   *roleID,
		Duration: duration,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error generating token")
	}

	log.Debug().
		Int64("user_id", *userID).
		Int64("role_id", *roleID).
		Time("expires_at", token.Claims.ExpiresAt.Time).
		Msg("token generated")

	fmt.Println(token.SignedString)
}
