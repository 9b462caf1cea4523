// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/store"
	"github.com/MKhiriev/go-clean-architecture/models"
)

type roleService struct {
	uowFactory store.UnitOfWorkFactory
	logger     *logger.Logger
}

func NewRoleService(uowFactory store.UnitOfWorkFactory, logger *logger.Logger) RoleService {
	return &roleService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *roleService) GetByID(ctx context.Context, roleID int64) (models.UserRoles, error) {
	role, err := s.uowFactory.NewUnitOfWork().UserRoles().Find(ctx, roleID)
	if errors.Is(err, store.ErrEntityNotFound) {
		return models.UserRoles{}, fmt.Errorf("%w: %w", ErrRoleNotFound, err)
	}
	if err != nil {
		return models.UserRoles{}, fmt.Errorf("error loading role: %w", err)
	}

	return role, nil
}

func (s *roleService) List(ctx context.Context) ([]models.UserRoles, error) {
	roles, err := s.uowFactory.NewUnitOfWork().UserRoles().Query(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing roles: %w", err)
	}

	return roles, nil
}
