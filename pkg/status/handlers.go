// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(context.Context) error
}

type Status struct {
	Status   string `json:"status"`
	BuildVer string `json:"version"`
	Database string `json:"database"`
}

type API struct {
	db Pinger

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	result := Status{Status: "ok", BuildVer: version.Version, Database: "ok"}
	code := http.StatusOK
	available := 1.0

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)

		result.Status = "degraded"
		result.Database = "unavailable"
		code = http.StatusServiceUnavailable
		available = 0
	}

	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available); err != nil {
		a.logger.Debugf("error recording dependency availability: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(result)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"version": version.Version})
}

func NewAPI(db Pinger, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
