// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")

	ErrPasswordHashing = errors.New("error hashing password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAccessDenied is returned for authenticated callers whose role does
	// not allow access.
	ErrAccessDenied = errors.New("access denied")
	ErrRoleInactive = fmt.Errorf("%w: role is inactive", ErrAccessDenied)
	ErrRoleUnknown  = fmt.Errorf("%w: role does not exist", ErrAccessDenied)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
