// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/canonical/rbac-service/internal/db"
	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

var (
	roleColumns       = []string{"id", "account_id", "name", "description", "is_system_defined", "created_at", "updated_at"}
	permissionColumns = []string{"id", "code", "category", "description"}
	membershipColumns = []string{"id", "account_id", "user_id", "status", "created_at"}
	userColumns       = []string{"id", "email", "display_name", "is_super_admin", "created_at"}
)

type rowScanner interface {
	Scan(...any) error
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// prefix qualifies columns with a table alias for joined queries.
func prefix(alias string, columns []string) []string {
	qualified := make([]string, 0, len(columns))
	for _, c := range columns {
		qualified = append(qualified, alias+"."+c)
	}
	return qualified
}
