// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/store"
	"github.com/MKhiriev/go-clean-architecture/models"
)

// userService is the concrete implementation of UserService.
// It opens a fresh unit of work for every call and commits it before
// returning, so no state is shared between requests.
type userService struct {
	// uowFactory creates the unit of work used by each call.
	uowFactory store.UnitOfWorkFactory

	// hashCost is the bcrypt cost used for password hashes.
	hashCost int

	// now stamps created_at / updated_at.
	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService backed by uowFactory.
func NewUserService(uowFactory store.UnitOfWorkFactory, logger *logger.Logger) UserService {
	return &userService{
		uowFactory: uowFactory,
		hashCost:   bcrypt.DefaultCost,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger:     logger,
	}
}

func (s *userService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.uowFactory.NewUnitOfWork().Users().Find(ctx, userID)
	if err != nil {
		return models.User{}, userError(err)
	}

	return user, nil
}

func (s *userService) GetWithRole(ctx context.Context, userID int64) (models.UserWithRole, error) {
	user, err := s.uowFactory.NewUnitOfWork().UserWithRole(ctx, userID)
	if err != nil {
		return models.UserWithRole{}, userError(err)
	}

	return user, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.uowFactory.NewUnitOfWork().Users().Query(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// Create hashes the password, stamps both timestamps and commits the new
// user. The returned user carries the generated id.
func (s *userService) Create(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := s.hashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("error hashing password")
		return models.User{}, err
	}

	now := s.now()
	user := &models.User{
		Username:     request.Username,
		Email:        request.Email,
		FullName:     request.FullName,
		PasswordHash: passwordHash,
		RoleID:       request.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	uow := s.uowFactory.NewUnitOfWork()
	uow.Users().Add(user)
	if _, err = uow.SaveChanges(ctx); err != nil {
		log.Err(err).Str("func", "*userService.Create").Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user created")
	return *user, nil
}

// Update applies the non-nil fields of patch. A password patch is rehashed
// and ClearRole drops the role reference.
func (s *userService) Update(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	uow := s.uowFactory.NewUnitOfWork()
	user, err := uow.Users().Find(ctx, userID)
	if err != nil {
		return models.User{}, userError(err)
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.RoleID != nil {
		user.RoleID = patch.RoleID
	}
	if patch.ClearRole {
		user.RoleID = nil
	}
	if patch.Password != nil {
		if user.PasswordHash, err = s.hashPassword(*patch.Password); err != nil {
			return models.User{}, err
		}
	}
	user.UpdatedAt = s.now()

	uow.Users().Update(&user)
	if _, err = uow.SaveChanges(ctx); err != nil {
		log.Err(err).Str("func", "*userService.Update").Int64("user_id", userID).Msg("user update ended with error")
		return models.User{}, userError(err)
	}

	return user, nil
}

// Delete removes the user. A missing id is reported as ErrUserNotFound.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	uow := s.uowFactory.NewUnitOfWork()
	uow.Users().Remove(&models.User{UserID: userID})

	if _, err := uow.SaveChanges(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Delete").Int64("user_id", userID).Msg("user deletion ended with error")
		return userError(err)
	}

	return nil
}

func (s *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return string(hash), nil
}

// userError translates a missing row into ErrUserNotFound and leaves every
// other error wrapped as is.
func userError(err error) error {
	if errors.Is(err, store.ErrEntityNotFound) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	return err
}
