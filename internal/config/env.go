// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names are the
// section prefix (APP_, AUTH_, STORAGE_DB_, SERVER_) joined with the field's
// env tag, e.g. AUTH_TOKEN_SIGN_KEY or STORAGE_DB_DATABASE_URI. The JSON
// config path is read from the unprefixed CONFIG variable.
//
// Unset variables leave their fields zero so later sources and defaults can
// fill them; a value that does not convert to the field type is an error.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing environment variables: %w", err)
	}

	return nil
}
