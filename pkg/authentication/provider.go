// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// Config selects how bearer tokens are verified. Without a JWKSURL the keys
// are discovered from the issuer.
type Config struct {
	Issuer          string
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

func verifierConfig() *oidc.Config {
	return &oidc.Config{SkipClientIDCheck: true}
}

// NewVerifier builds the JWT verifier described by cfg.
func NewVerifier(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	if cfg.JWKSURL != "" {
		logger.Infof("verifying tokens of %s with keys from %s", cfg.Issuer, cfg.JWKSURL)
		keySet := oidc.NewRemoteKeySet(ctx, cfg.JWKSURL)

		return newJWTVerifier(oidc.NewVerifier(cfg.Issuer, keySet, verifierConfig()), cfg, tracer, monitor, logger), nil
	}

	logger.Infof("discovering token keys of %s", cfg.Issuer)
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider %s: %w", cfg.Issuer, err)
	}

	return NewJWTVerifier(provider, cfg, tracer, monitor, logger), nil
}
