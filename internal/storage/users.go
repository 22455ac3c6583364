// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/rbac-service/internal/types"
)

func (s *Storage) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.DisplayName, &u.IsSuperAdmin, &u.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) SetUserSuperAdmin(ctx context.Context, id string, isSuperAdmin bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserSuperAdmin")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_super_admin", isSuperAdmin).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
