// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// APIVersion identifies a representation variant of the HTTP API.
type APIVersion struct {
	Major int
	Minor int
}

var (
	// APIVersion1 returns flat user representations.
	APIVersion1 = APIVersion{Major: 1, Minor: 0}

	// APIVersion2 returns users together with their joined role.
	APIVersion2 = APIVersion{Major: 2, Minor: 0}

	// SupportedAPIVersions lists every version the server can serve.
	SupportedAPIVersions = []APIVersion{APIVersion1, APIVersion2}
)

// ParseAPIVersion parses "1", "1.0", "v2" or "2.0" style values.
// ok is false when the value is malformed or not supported.
func ParseAPIVersion(s string) (APIVersion, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v")
	if s == "" {
		return APIVersion{}, false
	}

	majorStr, minorStr, hasMinor := strings.Cut(s, ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return APIVersion{}, false
	}

	minor := 0
	if hasMinor {
		minor, err = strconv.Atoi(minorStr)
		if err != nil {
			return APIVersion{}, false
		}
	}

	v := APIVersion{Major: major, Minor: minor}
	for _, supported := range SupportedAPIVersions {
		if v == supported {
			return v, true
		}
	}

	return APIVersion{}, false
}

// String returns the "major.minor" form, e.g. "1.0".
func (v APIVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// DocName returns the document name used for the OpenAPI path, e.g. "v1".
func (v APIVersion) DocName() string {
	return "v" + strconv.Itoa(v.Major)
}
