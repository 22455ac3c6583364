// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/rbac-service/internal/types"
)

func (s *Storage) ListPermissions(ctx context.Context) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissions")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(permissionColumns...).
		From("permissions").
		OrderBy("category", "code")

	return s.listPermissions(ctx, query)
}

// ListPermissionsByIDs returns the permissions matching ids, unknown ids are skipped.
func (s *Storage) ListPermissionsByIDs(ctx context.Context, ids []string) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissionsByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*types.Permission{}, nil
	}

	query := s.db.Statement(ctx).
		Select(permissionColumns...).
		From("permissions").
		Where(sq.Eq{"id": ids}).
		OrderBy("category", "code")

	return s.listPermissions(ctx, query)
}

func (s *Storage) ListRolePermissions(ctx context.Context, roleID string) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolePermissions")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(prefix("p", permissionColumns)...).
		From("permissions p").
		Join("role_permissions rp ON rp.permission_id = p.id").
		Where(sq.Eq{"rp.role_id": roleID}).
		OrderBy("p.category", "p.code")

	return s.listPermissions(ctx, query)
}

func (s *Storage) listPermissions(ctx context.Context, query sq.SelectBuilder) ([]*types.Permission, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	permissions := make([]*types.Permission, 0)
	for rows.Next() {
		var p types.Permission
		if err := rows.Scan(&p.ID, &p.Code, &p.Category, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}

// AddRolePermissions inserts the missing role permission edges, existing
// edges are left untouched.
func (s *Storage) AddRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddRolePermissions")
	defer span.End()

	if len(permissionIDs) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("role_permissions").
		Columns("role_id", "permission_id")

	for _, id := range permissionIDs {
		query = query.Values(roleID, id)
	}

	_, err := query.
		Suffix("ON CONFLICT (role_id, permission_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "role permission")
		}
		return fmt.Errorf("failed to add role permissions: %w", err)
	}

	return nil
}

// PruneRolePermissions deletes every edge of the role whose permission is not
// in keep, an empty keep set clears the role.
func (s *Storage) PruneRolePermissions(ctx context.Context, roleID string, keep []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PruneRolePermissions")
	defer span.End()

	query := s.db.Statement(ctx).
		Delete("role_permissions").
		Where(sq.Eq{"role_id": roleID})

	if len(keep) > 0 {
		query = query.Where(sq.NotEq{"permission_id": keep})
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune role permissions: %w", err)
	}

	return res.RowsAffected()
}

func (s *Storage) DeleteRolePermissionsByRole(ctx context.Context, roleID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRolePermissionsByRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("role_permissions").
		Where(sq.Eq{"role_id": roleID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete role permissions: %w", err)
	}

	return res.RowsAffected()
}
