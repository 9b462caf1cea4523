// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/service"
	"github.com/MKhiriev/go-clean-architecture/internal/utils"
	"github.com/MKhiriev/go-clean-architecture/models"
)

type Handler struct {
	services *service.Services

	cfg config.Server

	// defaultVersion is served when X-API-Version is absent or unsupported.
	defaultVersion models.APIVersion

	metrics  *httpMetrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	defaultVersion, ok := models.ParseAPIVersion(services.AppInfoService.GetAppInfo(context.Background()).DefaultAPIVersion)
	if !ok {
		defaultVersion = models.APIVersion1
	}

	logger.Info().Str("default_api_version", defaultVersion.String()).Msg("http handler created")
	return &Handler{
		services:       services,
		cfg:            cfg,
		defaultVersion: defaultVersion,
		metrics:        newHTTPMetrics(),
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
