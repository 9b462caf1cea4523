// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	certFile string
	keyFile  string

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		return nil, errIncompleteTLSConfig
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		certFile: cfg.TLSCertFile,
		keyFile:  cfg.TLSKeyFile,
		logger:   logger,
	}, nil
}

func (h *httpServer) tls() bool {
	return h.certFile != "" && h.keyFile != ""
}

// Serve accepts connections on l until the server is shut down.
func (h *httpServer) Serve(l net.Listener) error {
	h.logger.Info().
		Str("func", "*httpServer.Serve").
		Str("address", l.Addr().String()).
		Bool("tls", h.tls()).
		Msg("HTTP server listening")

	var err error
	if h.tls() {
		err = h.server.ServeTLS(l, h.certFile, h.keyFile)
	} else {
		err = h.server.Serve(l)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("HTTP server serve: %w", err)
}

func (h *httpServer) ListenAndServe() error {
	l, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("HTTP server listen: %w", err)
	}
	return h.Serve(l)
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Str("func", "*httpServer.Shutdown").Msg("HTTP server shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}
