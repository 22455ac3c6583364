// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockTokenVerifierInterface)
		outcome            string
		expectedStatusCode int
		expectedUserID     string
	}{
		{
			name:               "Missing token - rejects request",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			outcome:            "rejected",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			authHeader:         "InvalidToken",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			outcome:            "rejected",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Empty bearer - rejects request",
			authHeader:         "Bearer   ",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			outcome:            "rejected",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return("", fmt.Errorf("invalid token"))
			},
			outcome:            "rejected",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("user-123", nil)
			},
			outcome:            "accepted",
			expectedStatusCode: http.StatusOK,
			expectedUserID:     "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockMonitor.EXPECT().IncrementDecisionCounter(map[string]string{"operation": "authenticate", "outcome": tt.outcome}).Return(nil)
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			tt.setupMocks(mockVerifier)

			middleware := NewMiddleware(mockVerifier, mockTracer, mockMonitor, mockLogger)

			var userID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Fatalf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if userID != tt.expectedUserID {
				t.Errorf("expected user %q, got %q", tt.expectedUserID, userID)
			}

			if rr.Code != http.StatusUnauthorized {
				return
			}

			var body struct {
				Status int    `json:"status"`
				Reason string `json:"reason"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Status != http.StatusUnauthorized || body.Reason != reasonUnauthenticated {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Basic credentials",
			authHeader:    "Basic dXNlcjpwYXNz",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(NewMockTokenVerifierInterface(ctrl), NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	if _, ok := GetUserID(context.Background()); ok {
		t.Error("expected no user in empty context")
	}

	if _, ok := GetUserID(WithUserID(context.Background(), "")); ok {
		t.Error("expected empty user id to count as absent")
	}

	if id, ok := GetUserID(WithUserID(context.Background(), "u-1")); !ok || id != "u-1" {
		t.Errorf("expected u-1, got %q", id)
	}
}
