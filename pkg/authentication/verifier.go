// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrNoAccessPolicy = errors.New("no access policy configured")
	ErrAccessDenied   = errors.New("subject not allowed and required scope missing")
)

type tokenClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c *tokenClaims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

type JWTVerifier struct {
	verifier        *oidc.IDTokenVerifier
	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var claims tokenClaims
	if err := token.Claims(&claims); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	if err := v.authorize(&claims); err != nil {
		v.logger.Security().AuthzFailure(claims.Subject, "rbac_api")
		return "", err
	}

	return claims.Subject, nil
}

// authorize admits a token whose subject is allow listed or that carries the
// required scope. With neither configured nothing is admitted.
func (v *JWTVerifier) authorize(claims *tokenClaims) error {
	if len(v.allowedSubjects) == 0 && v.requiredScope == "" {
		return ErrNoAccessPolicy
	}

	if slices.Contains(v.allowedSubjects, claims.Subject) {
		return nil
	}

	if v.requiredScope != "" && claims.hasScope(v.requiredScope) {
		return nil
	}

	return ErrAccessDenied
}

func newJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:        verifier,
		allowedSubjects: cfg.AllowedSubjects,
		requiredScope:   cfg.RequiredScope,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

func NewJWTVerifier(
	provider ProviderInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return newJWTVerifier(provider.Verifier(verifierConfig()), cfg, tracer, monitor, logger)
}
