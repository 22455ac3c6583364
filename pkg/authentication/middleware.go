// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/canonical/rbac-service/internal/http/types"
	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
)

const reasonUnauthenticated = "unauthenticated"

type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate requires a verified bearer token and stores its subject as
// the user id of the request.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.reject(w, "missing bearer token")
				return
			}

			userID, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("token rejected: %v", err)
				m.reject(w, "invalid token")
				return
			}

			m.record("accepted")
			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	token, found := strings.CutPrefix(headers.Get("Authorization"), "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

func (m *Middleware) reject(w http.ResponseWriter, message string) {
	m.record("rejected")
	types.WriteError(w, types.NewStatus(codes.Unauthenticated, reasonUnauthenticated, message))
}

func (m *Middleware) record(outcome string) {
	if err := m.monitor.IncrementDecisionCounter(map[string]string{"operation": "authenticate", "outcome": outcome}); err != nil {
		m.logger.Debugf("failed to record authentication outcome: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
