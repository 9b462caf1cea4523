// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppInfo is returned by the public version endpoint.
type AppInfo struct {
	Version              string   `json:"version"`
	DefaultAPIVersion    string   `json:"default_api_version"`
	SupportedAPIVersions []string `json:"supported_api_versions"`
}
