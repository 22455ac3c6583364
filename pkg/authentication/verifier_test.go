// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

const testIssuer = "https://issuer.example.com"

func signToken(t *testing.T, key *rsa.PrivateKey, claims map[string]any) string {
	t.Helper()

	enc := func(v any) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(raw)
	}

	signingInput := enc(map[string]string{"alg": "RS256", "typ": "JWT"}) + "." + enc(claims)
	digest := sha256.Sum256([]byte(signingInput))

	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(sig)
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	claims := func(sub, scope string) map[string]any {
		return map[string]any{
			"iss":   testIssuer,
			"sub":   sub,
			"aud":   "rbac",
			"exp":   time.Now().Add(time.Hour).Unix(),
			"iat":   time.Now().Unix(),
			"scope": scope,
		}
	}

	tests := []struct {
		name            string
		token           func() string
		allowedSubjects []string
		requiredScope   string
		expectedSubject string
		expectedErr     error
		authzFailure    bool
	}{
		{
			name:            "allowed subject",
			token:           func() string { return signToken(t, key, claims("svc-ui", "")) },
			allowedSubjects: []string{"svc-ui"},
			expectedSubject: "svc-ui",
		},
		{
			name:            "required scope",
			token:           func() string { return signToken(t, key, claims("u-1", "openid rbac.manage")) },
			requiredScope:   "rbac.manage",
			expectedSubject: "u-1",
		},
		{
			name:          "missing scope",
			token:         func() string { return signToken(t, key, claims("u-1", "openid")) },
			requiredScope: "rbac.manage",
			expectedErr:   ErrAccessDenied,
			authzFailure:  true,
		},
		{
			name:         "no access policy",
			token:        func() string { return signToken(t, key, claims("u-1", "rbac.manage")) },
			expectedErr:  ErrNoAccessPolicy,
			authzFailure: true,
		},
		{
			name: "expired token",
			token: func() string {
				c := claims("u-1", "rbac.manage")
				c["exp"] = time.Now().Add(-time.Hour).Unix()
				return signToken(t, key, c)
			},
			requiredScope: "rbac.manage",
			expectedErr:   ErrInvalidToken,
		},
		{
			name:          "garbage",
			token:         func() string { return "not-a-jwt" },
			requiredScope: "rbac.manage",
			expectedErr:   ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}
			mockProvider.EXPECT().Verifier(gomock.Any()).DoAndReturn(func(cfg *oidc.Config) *oidc.IDTokenVerifier {
				return oidc.NewVerifier(testIssuer, keySet, cfg)
			})

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.JWTVerifier.VerifyToken").Return(ctx, trace.SpanFromContext(ctx))

			if tt.authzFailure {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(gomock.Any(), "rbac_api")
			}

			v := NewJWTVerifier(
				mockProvider,
				Config{Issuer: testIssuer, AllowedSubjects: tt.allowedSubjects, RequiredScope: tt.requiredScope},
				mockTracer, mockMonitor, mockLogger,
			)

			subject, err := v.VerifyToken(ctx, tt.token())

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if subject != tt.expectedSubject {
				t.Errorf("expected subject %q, got %q", tt.expectedSubject, subject)
			}
		})
	}
}
