// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/store"
	"github.com/MKhiriev/go-clean-architecture/models"
)

type branchService struct {
	uowFactory store.UnitOfWorkFactory
	logger     *logger.Logger
}

func NewBranchService(uowFactory store.UnitOfWorkFactory, logger *logger.Logger) BranchService {
	return &branchService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *branchService) List(ctx context.Context) ([]models.Branch, error) {
	branches, err := s.uowFactory.NewUnitOfWork().Branches().Query(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing branches: %w", err)
	}

	return branches, nil
}
