// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/service"
	"github.com/MKhiriev/go-clean-architecture/internal/store"
	"github.com/MKhiriev/go-clean-architecture/models"
)

func ptr[T any](v T) *T {
	return &v
}

func sampleUser() models.User {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return models.User{
		UserID:       5,
		Username:     "jane_doe",
		Email:        "jane@example.com",
		FullName:     "Jane Doe",
		PasswordHash: "$2a$10$hash",
		RoleID:       ptr(int64(2)),
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func sampleUserWithRole() models.UserWithRole {
	return models.UserWithRole{
		User: sampleUser(),
		Role: &models.UserRoles{RoleID: 2, RoleName: "User", IsActive: true},
	}
}

func TestGetUser_VersionSelection(t *testing.T) {
	tests := []struct {
		name           string
		defaultVersion string
		header         string
		wantRole       bool
	}{
		{name: "no header uses default v1", defaultVersion: "1.0"},
		{name: "unknown header uses default v1", defaultVersion: "1.0", header: "9.9"},
		{name: "garbage header uses default v1", defaultVersion: "1.0", header: "latest"},
		{name: "explicit v1", defaultVersion: "2.0", header: "1"},
		{name: "explicit v2", defaultVersion: "1.0", header: "2.0", wantRole: true},
		{name: "no header uses default v2", defaultVersion: "2.0", wantRole: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, config.Server{}, tt.defaultVersion)
			m.allowCaller()

			if tt.wantRole {
				m.users.EXPECT().GetWithRole(gomock.Any(), int64(5)).Return(sampleUserWithRole(), nil)
			} else {
				m.users.EXPECT().GetByID(gomock.Any(), int64(5)).Return(sampleUser(), nil)
			}

			opts := []requestOption{withToken(testToken)}
			if tt.header != "" {
				opts = append(opts, withVersion(tt.header))
			}

			rr := serve(router, http.MethodGet, "/api/users/5", "", opts...)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "1.0, 2.0", rr.Header().Get(supportedVersionsHeader))

			body := decodeJSON[map[string]any](t, rr)
			assert.Equal(t, "jane_doe", body["username"])
			assert.NotContains(t, body, "password_hash")
			assert.NotContains(t, body, "PasswordHash")
			assert.Equal(t, tt.wantRole, body["role"] != nil)
		})
	}
}

func TestGetUser_Errors(t *testing.T) {
	router, m := newTestRouter(t, config.Server{}, "1.0")
	m.allowCaller()

	m.users.EXPECT().GetByID(gomock.Any(), int64(404)).
		Return(models.User{}, fmt.Errorf("%w: %w", service.ErrUserNotFound, store.ErrEntityNotFound))
	m.users.EXPECT().GetByID(gomock.Any(), int64(500)).
		Return(models.User{}, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery))

	rr := serve(router, http.MethodGet, "/api/users/404", "", withToken(testToken))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, http.MethodGet, "/api/users/abc", "", withToken(testToken))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(router, http.MethodGet, "/api/users/500", "", withToken(testToken))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeJSON[models.ErrorResponse](t, rr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Error)
}

func TestListUsers(t *testing.T) {
	users := []models.User{sampleUser(), {UserID: 6, Username: "no_role"}}
	roles := []models.UserRoles{{RoleID: 2, RoleName: "User", IsActive: true}}

	t.Run("v1 returns flat users", func(t *testing.T) {
		router, m := newTestRouter(t, config.Server{}, "1.0")
		m.allowCaller()
		m.users.EXPECT().List(gomock.Any()).Return(users, nil)

		rr := serve(router, http.MethodGet, "/api/users", "", withToken(testToken))
		require.Equal(t, http.StatusOK, rr.Code)

		list := decodeJSON[models.ListResponse[models.User]](t, rr)
		assert.Equal(t, 2, list.Length)
		assert.Equal(t, "jane_doe", list.Items[0].Username)
	})

	t.Run("v2 joins roles", func(t *testing.T) {
		router, m := newTestRouter(t, config.Server{}, "1.0")
		m.allowCaller()
		m.users.EXPECT().List(gomock.Any()).Return(users, nil)
		m.roles.EXPECT().List(gomock.Any()).Return(roles, nil)

		rr := serve(router, http.MethodGet, "/api/users", "", withToken(testToken), withVersion("2.0"))
		require.Equal(t, http.StatusOK, rr.Code)

		list := decodeJSON[models.ListResponse[models.UserWithRole]](t, rr)
		require.Equal(t, 2, list.Length)
		require.NotNil(t, list.Items[0].Role)
		assert.Equal(t, "User", list.Items[0].Role.RoleName)
		assert.Nil(t, list.Items[1].Role)
	})
}

func TestCreateUser(t *testing.T) {
	const body = `{"username":"jane_doe","email":"jane@example.com","full_name":"Jane Doe","password":"s3cret-pass","role_id":2}`
	request := models.CreateUserRequest{
		Username: "jane_doe",
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "s3cret-pass",
		RoleID:   ptr(int64(2)),
	}

	t.Run("created", func(t *testing.T) {
		router, m := newTestRouter(t, config.Server{}, "1.0")
		m.allowCaller()
		m.users.EXPECT().Create(gomock.Any(), request).Return(sampleUser(), nil)

		rr := serve(router, http.MethodPost, "/api/users", body, withToken(testToken))
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "/api/users/5", rr.Header().Get("Location"))

		user := decodeJSON[models.User](t, rr)
		assert.Equal(t, int64(5), user.UserID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("created v2", func(t *testing.T) {
		router, m := newTestRouter(t, config.Server{}, "1.0")
		m.allowCaller()
		m.users.EXPECT().Create(gomock.Any(), request).Return(sampleUser(), nil)
		m.users.EXPECT().GetWithRole(gomock.Any(), int64(5)).Return(sampleUserWithRole(), nil)

		rr := serve(router, http.MethodPost, "/api/users", body, withToken(testToken), withVersion("2"))
		require.Equal(t, http.StatusCreated, rr.Code)

		user := decodeJSON[models.UserWithRole](t, rr)
		require.NotNil(t, user.Role)
		assert.Equal(t, int64(2), user.Role.RoleID)
	})

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed json", body: `{"username":`, wantStatus: http.StatusBadRequest},
		{name: "invalid data", body: body, serviceErr: fmt.Errorf("%w: email must be a valid email address", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest},
		{name: "duplicate username", body: body, serviceErr: fmt.Errorf("create: %w", store.ErrDuplicateKey), wantStatus: http.StatusConflict},
		{name: "unknown role", body: body, serviceErr: fmt.Errorf("create: %w", store.ErrForeignKeyViolation), wantStatus: http.StatusBadRequest},
		{name: "database down", body: body, serviceErr: errors.New("database is down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, config.Server{}, "1.0")
			m.allowCaller()
			if tt.serviceErr != nil {
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rr := serve(router, http.MethodPost, "/api/users", tt.body, withToken(testToken))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateUser(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			router, m := newTestRouter(t, config.Server{}, "1.0")
			m.allowCaller()

			updated := sampleUser()
			updated.FullName = "Jane Q. Doe"
			m.users.EXPECT().Update(gomock.Any(), int64(5), models.UserPatch{FullName: ptr("Jane Q. Doe")}).Return(updated, nil)

			rr := serve(router, method, "/api/users/5", `{"full_name":"Jane Q. Doe"}`, withToken(testToken))
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "Jane Q. Doe", decodeJSON[models.User](t, rr).FullName)
		})
	}

	t.Run("missing user", func(t *testing.T) {
		router, m := newTestRouter(t, config.Server{}, "1.0")
		m.allowCaller()
		m.users.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(models.User{}, service.ErrUserNotFound)

		rr := serve(router, http.MethodPatch, "/api/users/9", `{"email":"x@example.com"}`, withToken(testToken))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	router, m := newTestRouter(t, config.Server{}, "1.0")
	m.allowCaller()

	m.users.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
	m.users.EXPECT().Delete(gomock.Any(), int64(6)).
		Return(fmt.Errorf("%w: %w", service.ErrUserNotFound, store.ErrEntityNotFound))

	rr := serve(router, http.MethodDelete, "/api/users/5", "", withToken(testToken))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serve(router, http.MethodDelete, "/api/users/6", "", withToken(testToken))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, decodeJSON[models.ErrorResponse](t, rr).Error, service.ErrUserNotFound.Error())

	rr = serve(router, http.MethodDelete, "/api/users/zero", "", withToken(testToken))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
