// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/rbac-service/internal/db"
	"github.com/canonical/rbac-service/internal/identity"
	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/pkg/rbac"
)

func newTestRouter(t *testing.T, service rbac.ServiceInterface) http.Handler {
	t.Helper()

	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	dbClient := db.NewDBClientFromDB(conn, tracer, monitor, logger)

	return NewRouter(
		RouterConfig{
			CORSAllowedOrigins: []string{"https://console.example.com"},
			Authenticate:       identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
		},
		service,
		dbClient,
		tracer,
		monitor,
		logger,
	)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		headers        map[string]string
		setupMocks     func(*rbac.MockServiceInterface)
		expectedStatus int
		expectedHeader map[string]string
	}{
		{
			name:           "status is public",
			method:         http.MethodGet,
			path:           "/api/v0/status",
			setupMocks:     func(*rbac.MockServiceInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rbac endpoints need an identity",
			method:         http.MethodGet,
			path:           "/api/v0/ladder",
			setupMocks:     func(*rbac.MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "identity header reaches the rbac api",
			method:  http.MethodGet,
			path:    "/api/v0/ladder",
			headers: map[string]string{identity.HeaderName: "u-1"},
			setupMocks: func(s *rbac.MockServiceInterface) {
				s.EXPECT().LadderTiers().Return(rbac.DefaultLadder().Tiers())
			},
			expectedStatus: http.StatusOK,
			expectedHeader: map[string]string{
				"X-Frame-Options":        "DENY",
				"X-Content-Type-Options": "nosniff",
			},
		},
		{
			name:   "cors preflight",
			method: http.MethodOptions,
			path:   "/api/v0/accounts/acc-1/roles",
			headers: map[string]string{
				"Origin":                        "https://console.example.com",
				"Access-Control-Request-Method": http.MethodPost,
			},
			setupMocks: func(*rbac.MockServiceInterface) {},
			expectedHeader: map[string]string{
				"Access-Control-Allow-Origin": "https://console.example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := rbac.NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			router := newTestRouter(t, mockService)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if tt.expectedStatus != 0 {
				assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			}

			for k, v := range tt.expectedHeader {
				assert.Equal(t, v, w.Header().Get(k), k)
			}
		})
	}
}
