// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"context"

	"github.com/canonical/rbac-service/internal/types"
)

type ServiceInterface interface {
	LadderTiers() []Tier
	ResolveEffectiveLevel(isSuperAdmin bool, roleNames []string) int
	PartitionRolesByAssignability(actorIsSuperAdmin bool, actorLevel int, roles []*types.Role) *Partition
	ResolveActor(ctx context.Context, accountID, userID string) (*Actor, error)
	AssignableRoles(ctx context.Context, actor *Actor, accountID string) (*Partition, error)
	AuthorizeRoleManagement(actor *Actor, roleName string) error
	AssignRolesToMembership(ctx context.Context, actor *Actor, membershipID string, roleIDs []string, superAdmin *bool) error
	ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error
	CreateCustomRole(ctx context.Context, accountID, name string, permissionIDs []string) (*types.Role, error)
	DeleteRole(ctx context.Context, roleID string) error
	GetRole(ctx context.Context, roleID string) (*types.Role, error)
	ListRoles(ctx context.Context, accountID string) ([]*types.Role, error)
	ListRolePermissions(ctx context.Context, roleID string) ([]*types.Permission, error)
	ListPermissionCategories(ctx context.Context) ([]*PermissionCategory, error)
}

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

// TxManagerInterface runs fn in a single store transaction, a nil return
// commits and anything else rolls back.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type PermissionCatalogInterface interface {
	Categories(ctx context.Context) ([]*PermissionCategory, error)
	Invalidate()
}
