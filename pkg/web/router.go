// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/rbac-service/internal/db"
	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/pkg/metrics"
	"github.com/canonical/rbac-service/pkg/rbac"
	"github.com/canonical/rbac-service/pkg/status"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	MutationRateLimit  int

	// Authenticate puts the caller id on the request context, it guards
	// every rbac endpoint.
	Authenticate func(http.Handler) http.Handler
}

func NewRouter(
	cfg RouterConfig,
	service rbac.ServiceInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
		middlewareSecure(logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		if cfg.Authenticate != nil {
			r.Use(cfg.Authenticate)
		}
		r.Use(db.TransactionMiddleware(dbClient, logger))

		rbac.NewAPI(service, cfg.MutationRateLimit, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
