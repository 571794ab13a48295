// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	corsOrigins    []string

	metrics *httpMetrics

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. Extra collectors (database pool
// statistics, for instance) are exposed on /metrics next to the HTTP ones.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger, collectors ...prometheus.Collector) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		corsOrigins:    cfg.CORSOrigins,
		metrics:        newHTTPMetrics(collectors...),
		logger:         logger,
	}
}
