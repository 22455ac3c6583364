// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/pkg/authentication"
)

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUserID string
	}{
		{name: "identity header", header: "u-1", expectedStatus: http.StatusOK, expectedUserID: "u-1"},
		{name: "padded header", header: "  u-2 ", expectedStatus: http.StatusOK, expectedUserID: "u-2"},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			var userID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, _ = authentication.GetUserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/accounts/acc-1/me", nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			rr := httptest.NewRecorder()

			m.HTTPMiddleware(next).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			if userID != tt.expectedUserID {
				t.Errorf("expected user %q, got %q", tt.expectedUserID, userID)
			}
		})
	}
}
