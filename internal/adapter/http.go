// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/utils"
	"github.com/MKhiriev/go-clean-architecture/models"
)

const apiVersionHeader = "X-API-Version"

type httpUsersAPI struct {
	client *utils.HTTPClient

	mu         sync.RWMutex
	token      string
	apiVersion string

	logger *logger.Logger
}

// NewHTTPUsersAPI constructs the HTTP implementation of [UsersAPI] for the
// server at address ("host:port" or a full URL).
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPUsersAPI(address string, timeout time.Duration, logger *logger.Logger) (UsersAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpUsersAPI{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUsersAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpUsersAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpUsersAPI) SetAPIVersion(version string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.apiVersion = strings.TrimSpace(version)
}

func (h *httpUsersAPI) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo
	if err := h.do(h.request(ctx), http.MethodGet, "/api/version", &info); err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	return info, nil
}

func (h *httpUsersAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	var list models.ListResponse[models.User]
	if err := h.do(h.request(ctx), http.MethodGet, "/api/users", &list); err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	return list.Items, nil
}

func (h *httpUsersAPI) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	if err := h.do(h.request(ctx), http.MethodGet, userPath(userID), &user); err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	return user, nil
}

func (h *httpUsersAPI) GetUserWithRole(ctx context.Context, userID int64) (models.UserWithRole, error) {
	var user models.UserWithRole
	req := h.request(ctx).SetHeader(apiVersionHeader, models.APIVersion2.String())
	if err := h.do(req, http.MethodGet, userPath(userID), &user); err != nil {
		return models.UserWithRole{}, fmt.Errorf("get user with role request: %w", err)
	}
	return user, nil
}

func (h *httpUsersAPI) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	var user models.User
	req := h.request(ctx).SetHeader("Content-Type", "application/json").SetBody(request)
	if err := h.do(req, http.MethodPost, "/api/users", &user); err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	return user, nil
}

func (h *httpUsersAPI) UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	var user models.User
	req := h.request(ctx).SetHeader("Content-Type", "application/json").SetBody(patch)
	if err := h.do(req, http.MethodPatch, userPath(userID), &user); err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	return user, nil
}

func (h *httpUsersAPI) DeleteUser(ctx context.Context, userID int64) error {
	if err := h.do(h.request(ctx), http.MethodDelete, userPath(userID), nil); err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	return nil
}

func (h *httpUsersAPI) ListRoles(ctx context.Context) ([]models.UserRoles, error) {
	var list models.ListResponse[models.UserRoles]
	if err := h.do(h.request(ctx), http.MethodGet, "/api/roles", &list); err != nil {
		return nil, fmt.Errorf("list roles request: %w", err)
	}
	return list.Items, nil
}

func (h *httpUsersAPI) ListBranches(ctx context.Context) ([]models.Branch, error) {
	var list models.ListResponse[models.Branch]
	if err := h.do(h.request(ctx), http.MethodGet, "/api/branches", &list); err != nil {
		return nil, fmt.Errorf("list branches request: %w", err)
	}
	return list.Items, nil
}

// request prepares a request carrying the stored token and API version.
func (h *httpUsersAPI) request(ctx context.Context) *resty.Request {
	h.mu.RLock()
	defer h.mu.RUnlock()

	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	if h.apiVersion != "" {
		req.SetHeader(apiVersionHeader, h.apiVersion)
	}
	return req
}

// do executes req and decodes a successful body into result (when non-nil).
func (h *httpUsersAPI) do(req *resty.Request, method, path string, result any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(req.Context()).Debug().
			Str("func", "*httpUsersAPI.do").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("api call failed")
		return err
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func userPath(userID int64) string {
	return "/api/users/" + strconv.FormatInt(userID, 10)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// errorMessage prefers the "error" field of a JSON error body and falls back
// to the raw body, then to the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var errorResponse models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &errorResponse); err == nil && errorResponse.Error != "" {
		return errorResponse.Error
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
