// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/utils"
	"github.com/MKhiriev/go-clean-architecture/models"
)

const maxBodyBytes = 1 << 20

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.UserService.List(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if version, _ := utils.GetAPIVersionFromContext(ctx); version != models.APIVersion2 {
		h.writeJSON(w, r, models.NewListResponse(users), http.StatusOK)
		return
	}

	roles, err := h.services.RoleService.List(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rolesByID := make(map[int64]models.UserRoles, len(roles))
	for _, role := range roles {
		rolesByID[role.RoleID] = role
	}

	result := make([]models.UserWithRole, 0, len(users))
	for _, user := range users {
		withRole := models.UserWithRole{User: user}
		if user.RoleID != nil {
			if role, ok := rolesByID[*user.RoleID]; ok {
				withRole.Role = &role
			}
		}
		result = append(result, withRole)
	}

	h.writeJSON(w, r, models.NewListResponse(result), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if version, _ := utils.GetAPIVersionFromContext(r.Context()); version == models.APIVersion2 {
		user, err := h.services.UserService.GetWithRole(r.Context(), userID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, r, user, http.StatusOK)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.CreateUserRequest
	if err := decodeBody(w, r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Create(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user created")
	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.UserID))
	h.writeUser(w, r, user, http.StatusCreated)
}

// updateUser serves both PUT and PATCH; only the fields present in the body
// are changed.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var patch models.UserPatch
	if err = decodeBody(w, r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Update(r.Context(), userID, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeUser(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeUser renders user in the representation of the negotiated version.
func (h *Handler) writeUser(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	if version, _ := utils.GetAPIVersionFromContext(r.Context()); version != models.APIVersion2 {
		h.writeJSON(w, r, user, status)
		return
	}

	withRole, err := h.services.UserService.GetWithRole(r.Context(), user.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, withRole, status)
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathID, raw)
	}
	return id, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}
