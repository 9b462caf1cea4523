// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	defaultVersion, ok := models.ParseAPIVersion(cfg.DefaultAPIVersion)
	if !ok {
		defaultVersion = models.APIVersion1
	}

	supported := make([]string, 0, len(models.SupportedAPIVersions))
	for _, v := range models.SupportedAPIVersions {
		supported = append(supported, v.String())
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:              cfg.Version,
			DefaultAPIVersion:    defaultVersion.String(),
			SupportedAPIVersions: supported,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	info := s.info
	info.SupportedAPIVersions = append([]string(nil), s.info.SupportedAPIVersions...)
	return info
}
