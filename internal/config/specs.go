// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled         bool     `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer          string   `envconfig:"authentication_issuer"`
	AuthenticationJWKSURL         string   `envconfig:"authentication_jwks_url"`
	AuthenticationAllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope   string   `envconfig:"authentication_required_scope"`

	// PrivilegeLadder overrides the default role tiers, e.g. "admin:80,supervisor:60"
	PrivilegeLadder map[string]int `envconfig:"privilege_ladder"`

	PermissionCacheSize int           `envconfig:"permission_cache_size" default:"16"`
	PermissionCacheTTL  time.Duration `envconfig:"permission_cache_ttl" default:"5m"`

	MutationRateLimit  int      `envconfig:"mutation_rate_limit" default:"60"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
