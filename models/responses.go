// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body written for every failed API request.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// TraceID correlates the response with server-side log entries.
	TraceID string `json:"trace_id,omitempty"`
}

// ListResponse wraps collection results returned by list endpoints.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Length int `json:"length"`
}

// NewListResponse builds a [ListResponse] and never returns a nil Items slice,
// so empty collections serialize as [].
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Length: len(items)}
}
