// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/canonical/rbac-service/internal/http/types"
	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/pkg/authentication"
)

// HeaderName carries the identity id set by the authenticating proxy.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

// Middleware trusts the identity header of an upstream proxy, it is only
// mounted when bearer token authentication is disabled.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := strings.TrimSpace(r.Header.Get(HeaderName))
		if userID == "" {
			m.logger.Debugf("request to %s without %s header", r.URL.Path, HeaderName)
			types.WriteError(w, types.NewStatus(codes.Unauthenticated, "unauthenticated", "missing identity"))
			return
		}

		next.ServeHTTP(w, r.WithContext(authentication.WithUserID(ctx, userID)))
	})
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
