// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clean-architecture/internal/validators"
	"github.com/MKhiriev/go-clean-architecture/models"
)

// UserValidationService checks every input before delegating to the wrapped
// UserService. Failures wrap ErrInvalidDataProvided.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	if err := validators.ValidateID(userID); err != nil {
		return models.User{}, invalidData(err)
	}
	return v.inner.GetByID(ctx, userID)
}

func (v *UserValidationService) GetWithRole(ctx context.Context, userID int64) (models.UserWithRole, error) {
	if err := validators.ValidateID(userID); err != nil {
		return models.UserWithRole{}, invalidData(err)
	}
	return v.inner.GetWithRole(ctx, userID)
}

func (v *UserValidationService) List(ctx context.Context) ([]models.User, error) {
	return v.inner.List(ctx)
}

func (v *UserValidationService) Create(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, invalidData(err)
	}
	return v.inner.Create(ctx, request)
}

func (v *UserValidationService) Update(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	if err := validators.ValidateID(userID); err != nil {
		return models.User{}, invalidData(err)
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.User{}, invalidData(err)
	}
	return v.inner.Update(ctx, userID, patch)
}

func (v *UserValidationService) Delete(ctx context.Context, userID int64) error {
	if err := validators.ValidateID(userID); err != nil {
		return invalidData(err)
	}
	return v.inner.Delete(ctx, userID)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

func invalidData(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
