// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clean-architecture/internal/app"
	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("clean-architecture-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" {
		if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
			log.Fatal().Err(err).Msg("error setting log level")
		}
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Str("default_api_version", cfg.App.DefaultAPIVersion).
		Msg("received configs")

	ctx := context.Background()
	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error().Err(err).Msg("error closing application")
		}
	}()

	if err = application.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
