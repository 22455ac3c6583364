// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

const (
	levelInfo     = "INFO"
	levelWarn     = "WARN"
	levelCritical = "CRITICAL"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.emit(levelWarn, "sys_startup", "system started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.emit(levelWarn, "sys_shutdown", "system shutdown")
}

// AuthzFailure records a denied attempt to act on a resource.
func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.emit(
		levelCritical,
		fmt.Sprintf("authz_fail:%s,%s", user, resource),
		fmt.Sprintf("user %s attempted to access %s without entitlement", user, resource),
	)
}

// AuthzChange records a change to the privileges held by target.
func (s *SecurityLogger) AuthzChange(user, target, change string) {
	s.emit(
		levelWarn,
		fmt.Sprintf("authz_change:%s,%s,%s", user, target, change),
		fmt.Sprintf("user %s changed privileges of %s: %s", user, target, change),
	)
}

func (s *SecurityLogger) AdminAction(user, event string) {
	s.emit(
		levelWarn,
		fmt.Sprintf("authz_admin:%s,%s", user, event),
		fmt.Sprintf("user %s performed administrative action %s", user, event),
	)
}

func (s *SecurityLogger) emit(level, event, description string) {
	s.l.Info(
		description,
		zap.String("type", "security"),
		zap.String("level", level),
		zap.String("event", event),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	hostname, _ := os.Hostname()

	return &SecurityLogger{
		l: l.With(
			zap.String("appid", "rbac-service"),
			zap.String("hostname", hostname),
		),
	}
}
