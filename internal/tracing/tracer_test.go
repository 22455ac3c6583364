// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
)

func TestNoopTracerStart(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracerStart")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("expected noop span context to be invalid")
	}
}

func TestMiddlewareOpenTelemetry(t *testing.T) {
	mdw := NewMiddleware(monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	handler := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/ladder", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
}
