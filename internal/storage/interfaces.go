// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/rbac-service/internal/types"
)

type StorageInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	SetUserSuperAdmin(ctx context.Context, id string, isSuperAdmin bool) error

	GetMembership(ctx context.Context, id string) (*types.Membership, error)
	GetMembershipByUser(ctx context.Context, accountID, userID string) (*types.Membership, error)
	ListMembershipRoles(ctx context.Context, membershipID string) ([]*types.Role, error)
	AddMembershipRoles(ctx context.Context, membershipID string, roleIDs []string) error
	PruneMembershipRoles(ctx context.Context, membershipID string, keep []string) (int64, error)
	DeleteMembershipRolesByRole(ctx context.Context, roleID string) (int64, error)

	CreateRole(ctx context.Context, role *types.Role) (*types.Role, error)
	GetRole(ctx context.Context, id string) (*types.Role, error)
	ListRoles(ctx context.Context, accountID string) ([]*types.Role, error)
	ListRolesByIDs(ctx context.Context, ids []string) ([]*types.Role, error)
	DeleteRole(ctx context.Context, id string) error

	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	ListPermissionsByIDs(ctx context.Context, ids []string) ([]*types.Permission, error)
	ListRolePermissions(ctx context.Context, roleID string) ([]*types.Permission, error)
	AddRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error
	PruneRolePermissions(ctx context.Context, roleID string, keep []string) (int64, error)
	DeleteRolePermissionsByRole(ctx context.Context, roleID string) (int64, error)
}
