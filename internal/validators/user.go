// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-clean-architecture/models"
)

// maxPasswordBytes is the bcrypt input limit. It is measured in bytes, so
// multibyte passwords reach it with fewer characters.
const maxPasswordBytes = 72

// UserValidator implements [Validator] for user requests:
// models.CreateUserRequest and models.UserPatch (value or pointer).
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a UserValidator with the custom `username` and
// `bcryptmax` tags registered and field names reported by their JSON tag.
func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("bcryptmax", validateBcryptLength)

	return &UserValidator{validate: v}
}

// Validate checks obj against its struct tags.
func (v *UserValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateStruct(ctx, &value)
	case *models.CreateUserRequest:
		return v.validateStruct(ctx, value)
	case models.UserPatch:
		return v.validatePatch(ctx, &value)
	case *models.UserPatch:
		return v.validatePatch(ctx, value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validatePatch(ctx context.Context, patch *models.UserPatch) error {
	if patch == nil || patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return v.validateStruct(ctx, patch)
}

func (v *UserValidator) validateStruct(ctx context.Context, obj any) error {
	if reflect.ValueOf(obj).IsNil() {
		return fmt.Errorf("%w: nil %T", ErrValidationFailed, obj)
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}

	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(messages, "; "))
}

// validateUsername accepts letters, digits and underscores only.
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}

	for _, char := range username {
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}

	return true
}

func validateBcryptLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= maxPasswordBytes
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "username":
		return fmt.Sprintf("%s can only contain letters, numbers, and underscores", field)
	case "bcryptmax":
		return fmt.Sprintf("%s must be at most %d bytes", field, maxPasswordBytes)
	case "excluded_with":
		return fmt.Sprintf("%s cannot be combined with %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ValidateID checks that id can reference a stored row.
func ValidateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}
