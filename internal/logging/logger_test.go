// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerEvents(t *testing.T) {
	tests := []struct {
		name          string
		log           func(*SecurityLogger)
		expectedEvent string
		expectedLevel string
	}{
		{
			name:          "startup",
			log:           func(s *SecurityLogger) { s.SystemStartup() },
			expectedEvent: "sys_startup",
			expectedLevel: levelWarn,
		},
		{
			name:          "authz failure",
			log:           func(s *SecurityLogger) { s.AuthzFailure("user-1", "role:admin") },
			expectedEvent: "authz_fail:user-1,role:admin",
			expectedLevel: levelCritical,
		},
		{
			name:          "authz change",
			log:           func(s *SecurityLogger) { s.AuthzChange("user-1", "membership-2", "roles=3") },
			expectedEvent: "authz_change:user-1,membership-2,roles=3",
			expectedLevel: levelWarn,
		},
		{
			name:          "admin action",
			log:           func(s *SecurityLogger) { s.AdminAction("user-1", "role_deleted") },
			expectedEvent: "authz_admin:user-1,role_deleted",
			expectedLevel: levelWarn,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			s := &SecurityLogger{l: zap.New(core)}

			test.log(s)

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}

			fields := entries[0].ContextMap()
			if fields["event"] != test.expectedEvent {
				t.Errorf("expected event %q, got %v", test.expectedEvent, fields["event"])
			}
			if fields["level"] != test.expectedLevel {
				t.Errorf("expected level %q, got %v", test.expectedLevel, fields["level"])
			}
			if fields["type"] != "security" {
				t.Errorf("expected type security, got %v", fields["type"])
			}
		})
	}
}
