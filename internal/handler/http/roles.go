// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-clean-architecture/models"
)

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.services.RoleService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewListResponse(roles), http.StatusOK)
}

func (h *Handler) getRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	role, err := h.services.RoleService.GetByID(r.Context(), roleID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, role, http.StatusOK)
}

func (h *Handler) listBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.services.BranchService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewListResponse(branches), http.StatusOK)
}
