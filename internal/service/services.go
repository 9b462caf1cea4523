// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/store"
)

type Services struct {
	UserService    UserService
	RoleService    RoleService
	BranchService  BranchService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices constructs every service explicitly from the storages and the
// configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	roleService := NewRoleService(storages.UnitOfWorkFactory, logger)

	return &Services{
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UnitOfWorkFactory, logger)),
		RoleService:    roleService,
		BranchService:  NewBranchService(storages.UnitOfWorkFactory, logger),
		AuthService:    NewAuthService(roleService, cfg.Auth, logger),
		AppInfoService: appInfoService,
	}, nil
}
