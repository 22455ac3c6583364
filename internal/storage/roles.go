// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/rbac-service/internal/types"
)

func scanRole(row rowScanner) (*types.Role, error) {
	var r types.Role
	if err := row.Scan(&r.ID, &r.AccountID, &r.Name, &r.Description, &r.IsSystemDefined, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Storage) CreateRole(ctx context.Context, role *types.Role) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate role ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("roles").
		Columns("id", "account_id", "name", "description", "is_system_defined").
		Values(id.String(), role.AccountID, role.Name, role.Description, role.IsSystemDefined).
		Suffix("RETURNING id, account_id, name, description, is_system_defined, created_at, updated_at").
		QueryRowContext(ctx)

	created, err := scanRole(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, fmt.Sprintf("role %q", role.Name))
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, fmt.Sprintf("account %s", role.AccountID))
		}
		return nil, fmt.Errorf("failed to insert role: %w", err)
	}

	return created, nil
}

func (s *Storage) GetRole(ctx context.Context, id string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRole")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	r, err := scanRole(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r, nil
}

func (s *Storage) ListRoles(ctx context.Context, accountID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoles")
	defer span.End()

	return s.listRoles(ctx, sq.Eq{"account_id": accountID})
}

// ListRolesByIDs returns the roles matching ids, unknown ids are skipped.
func (s *Storage) ListRolesByIDs(ctx context.Context, ids []string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolesByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*types.Role{}, nil
	}

	return s.listRoles(ctx, sq.Eq{"id": ids})
}

func (s *Storage) listRoles(ctx context.Context, filter sq.Sqlizer) ([]*types.Role, error) {
	rows, err := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles").
		Where(filter).
		OrderBy("name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]*types.Role, 0)
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// DeleteRole removes the role row only, edges referencing it must be
// deleted beforehand.
func (s *Storage) DeleteRole(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("roles").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, fmt.Sprintf("role %s still referenced", id))
		}
		return fmt.Errorf("failed to delete role: %w", err)
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
