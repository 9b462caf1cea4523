// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// withRateLimit allows cfg.RateLimit requests per minute per client IP and
// answers the rest with 429.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	return httprate.LimitByIP(h.cfg.RateLimit, time.Minute)
}
