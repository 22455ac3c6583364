// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/rbac-service/internal/types"
)

func scanMembership(row rowScanner) (*types.Membership, error) {
	var m types.Membership
	if err := row.Scan(&m.ID, &m.AccountID, &m.UserID, &m.Status, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) GetMembership(ctx context.Context, id string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

func (s *Storage) GetMembershipByUser(ctx context.Context, accountID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{
			"account_id": accountID,
			"user_id":    userID,
		}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

// ListMembershipRoles returns the roles currently attached to a membership.
func (s *Storage) ListMembershipRoles(ctx context.Context, membershipID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipRoles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefix("r", roleColumns)...).
		From("roles r").
		Join("membership_roles mr ON mr.role_id = r.id").
		Where(sq.Eq{"mr.membership_id": membershipID}).
		OrderBy("r.name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list membership roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.Role
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

// AddMembershipRoles inserts the missing membership role edges, existing
// edges are left untouched.
func (s *Storage) AddMembershipRoles(ctx context.Context, membershipID string, roleIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddMembershipRoles")
	defer span.End()

	if len(roleIDs) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("membership_roles").
		Columns("membership_id", "role_id")

	for _, id := range roleIDs {
		query = query.Values(membershipID, id)
	}

	_, err := query.
		Suffix("ON CONFLICT (membership_id, role_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "membership role")
		}
		return fmt.Errorf("failed to add membership roles: %w", err)
	}

	return nil
}

// PruneMembershipRoles deletes every edge of the membership whose role is not
// in keep, an empty keep set clears the membership.
func (s *Storage) PruneMembershipRoles(ctx context.Context, membershipID string, keep []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PruneMembershipRoles")
	defer span.End()

	query := s.db.Statement(ctx).
		Delete("membership_roles").
		Where(sq.Eq{"membership_id": membershipID})

	if len(keep) > 0 {
		query = query.Where(sq.NotEq{"role_id": keep})
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune membership roles: %w", err)
	}

	return res.RowsAffected()
}

func (s *Storage) DeleteMembershipRolesByRole(ctx context.Context, roleID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembershipRolesByRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("membership_roles").
		Where(sq.Eq{"role_id": roleID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete membership roles: %w", err)
	}

	return res.RowsAffected()
}
