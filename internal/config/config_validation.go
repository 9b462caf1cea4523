// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-clean-architecture/models"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultHTTPAddress = "localhost:8080"
	DefaultDBDriver    = DriverSQLite
	DefaultSQLiteDSN   = "file:clean-architecture.db"
	DefaultAPIVersion  = "1.0"
	DefaultAppVersion  = "dev"
	DriverSQLite       = "sqlite3"
	DriverPostgres     = "pgx"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = DefaultSQLiteDSN
	}
	if cfg.App.DefaultAPIVersion == "" {
		cfg.App.DefaultAPIVersion = DefaultAPIVersion
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultAppVersion
	}
	// audience and issuer share one value unless configured apart
	if cfg.Auth.TokenAudience == "" {
		cfg.Auth.TokenAudience = cfg.Auth.TokenIssuer
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if (cfg.Server.TLSCertFile == "") != (cfg.Server.TLSKeyFile == "") {
		return fmt.Errorf("%w: TLS certificate and key must be set together", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}

	if _, ok := models.ParseAPIVersion(cfg.App.DefaultAPIVersion); !ok {
		return fmt.Errorf("%w: unsupported default API version %q", ErrInvalidAppConfigs, cfg.App.DefaultAPIVersion)
	}

	return nil
}
