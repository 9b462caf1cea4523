// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   APIVersion
		wantOK bool
	}{
		{name: "major only", input: "1", want: APIVersion1, wantOK: true},
		{name: "major.minor", input: "1.0", want: APIVersion1, wantOK: true},
		{name: "v prefix", input: "v2", want: APIVersion2, wantOK: true},
		{name: "spaces", input: " 2.0 ", want: APIVersion2, wantOK: true},
		{name: "unsupported", input: "3.0", wantOK: false},
		{name: "unsupported minor", input: "1.5", wantOK: false},
		{name: "garbage", input: "latest", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "bad minor", input: "1.x", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAPIVersion(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAPIVersion_StringAndDocName(t *testing.T) {
	assert.Equal(t, "1.0", APIVersion1.String())
	assert.Equal(t, "v2", APIVersion2.DocName())
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestUserPatch_IsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())

	name := "Jane"
	assert.False(t, UserPatch{FullName: &name}.IsEmpty())
	assert.False(t, UserPatch{ClearRole: true}.IsEmpty())
}

func TestNewListResponse_NilBecomesEmpty(t *testing.T) {
	resp := NewListResponse[User](nil)

	assert.NotNil(t, resp.Items)
	assert.Equal(t, 0, resp.Length)
}
