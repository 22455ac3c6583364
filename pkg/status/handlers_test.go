// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/internal/version"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestAlive(t *testing.T) {
	tests := []struct {
		name             string
		pingErr          error
		expectedStatus   int
		expectedDatabase string
	}{
		{
			name:             "database reachable",
			expectedStatus:   http.StatusOK,
			expectedDatabase: "ok",
		},
		{
			name:             "database down",
			pingErr:          errors.New("connection refused"),
			expectedStatus:   http.StatusServiceUnavailable,
			expectedDatabase: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := pingerFunc(func(context.Context) error { return tt.pingErr })

			mux := chi.NewMux()
			NewAPI(db, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var got Status
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if got.Database != tt.expectedDatabase {
				t.Errorf("expected database %q, got %q", tt.expectedDatabase, got.Database)
			}

			if got.BuildVer != version.Version {
				t.Errorf("expected version %q, got %q", version.Version, got.BuildVer)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(pingerFunc(func(context.Context) error { return nil }), tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/version", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var got map[string]string
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if got["version"] != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, got["version"])
	}
}
