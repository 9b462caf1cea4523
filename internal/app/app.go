// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/handler"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/server"
	"github.com/MKhiriev/go-clean-architecture/internal/service"
	"github.com/MKhiriev/go-clean-architecture/internal/store"
)

type App struct {
	storages *store.Storages
	services *service.Services
	handlers *handler.Handlers
	server   server.Server

	logger *logger.Logger
}

// NewApp wires every layer for cfg. The database is migrated and seeded
// before NewApp returns.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		handlers: handlers,
		server:   srv,
		logger:   logger,
	}, nil
}

// Router returns the full HTTP pipeline without binding a listener.
func (a *App) Router() http.Handler {
	return a.handlers.HTTP.Init()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "*App.Run").Msg("starting application")
	return a.server.RunServer(ctx)
}

func (a *App) Close() error {
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("error closing storages: %w", err)
	}
	return nil
}
