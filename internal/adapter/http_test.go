// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/models"
)

func newTestAPI(t *testing.T, serverURL string) *httpUsersAPI {
	t.Helper()

	api, err := NewHTTPUsersAPI(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return api.(*httpUsersAPI)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://api.example.com/", want: "https://api.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPUsersAPI_InvalidAddress(t *testing.T) {
	_, err := NewHTTPUsersAPI("", time.Second, logger.Nop())
	assert.Error(t, err)
}

func TestTokenAndVersionHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "2.0", r.Header.Get(apiVersionHeader))
		writeJSON(t, w, http.StatusOK, models.NewListResponse([]models.Branch{{BranchID: 1, BranchName: "Head Office"}}))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	api.SetToken("  abc ")
	api.SetAPIVersion("2.0")
	assert.Equal(t, "abc", api.Token())

	branches, err := api.ListBranches(context.Background())
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, "Head Office", branches[0].BranchName)
}

func TestCreateUser(t *testing.T) {
	request := models.CreateUserRequest{Username: "jane_doe", Email: "jane@example.com", Password: "s3cret-pass"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var got models.CreateUserRequest
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, request, got)

		writeJSON(t, w, http.StatusCreated, models.User{UserID: 11, Username: got.Username, Email: got.Email})
	}))
	defer srv.Close()

	user, err := newTestAPI(t, srv.URL).CreateUser(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, int64(11), user.UserID)
}

func TestGetUserWithRole_ForcesVersion2(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/3", r.URL.Path)
		assert.Equal(t, "2.0", r.Header.Get(apiVersionHeader))
		writeJSON(t, w, http.StatusOK, models.UserWithRole{
			User: models.User{UserID: 3},
			Role: &models.UserRoles{RoleID: 1, RoleName: "Administrator", IsActive: true},
		})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	api.SetAPIVersion("1.0")

	user, err := api.GetUserWithRole(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, user.Role)
	assert.Equal(t, "Administrator", user.Role.RoleName)
}

func TestDeleteUser_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAPI(t, srv.URL).DeleteUser(context.Background(), 4))
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{"bad request", http.StatusBadRequest, `{"error":"invalid data provided: email is invalid"}`, ErrBadRequest, "email is invalid"},
		{"unauthorized", http.StatusUnauthorized, `{"error":"token is expired or invalid"}`, ErrUnauthorized, "token is expired"},
		{"forbidden", http.StatusForbidden, `{"error":"access denied: role is inactive: Guest"}`, ErrForbidden, "role is inactive"},
		{"not found", http.StatusNotFound, `{"error":"user not found"}`, ErrNotFound, "user not found"},
		{"conflict", http.StatusConflict, `{"error":"duplicate key"}`, ErrConflict, "duplicate key"},
		{"rate limited", http.StatusTooManyRequests, `Too Many Requests`, ErrTooManyRequests, "Too Many Requests"},
		{"internal", http.StatusInternalServerError, ``, ErrInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAPI(t, srv.URL).GetUser(context.Background(), 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL).Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
