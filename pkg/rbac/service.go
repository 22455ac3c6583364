// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/storage"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	tx       TxManagerInterface
	ladder   *Ladder
	resolver *Resolver
	guard    *Guard
	catalog  PermissionCatalogInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) LadderTiers() []Tier {
	return s.ladder.Tiers()
}

func (s *Service) ResolveEffectiveLevel(isSuperAdmin bool, roleNames []string) int {
	return s.resolver.EffectiveLevel(isSuperAdmin, roleNames)
}

func (s *Service) PartitionRolesByAssignability(actorIsSuperAdmin bool, actorLevel int, roles []*types.Role) *Partition {
	return s.guard.Partition(actorIsSuperAdmin, actorLevel, roles)
}

// ResolveActor loads the caller and its standing in an account. Only an
// active membership contributes roles, super admins need no membership.
func (s *Service) ResolveActor(ctx context.Context, accountID, userID string) (*Actor, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.ResolveActor")
	defer span.End()

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, storeError("get user", err)
	}

	actor := &Actor{
		UserID:       user.ID,
		AccountID:    accountID,
		IsSuperAdmin: user.IsSuperAdmin,
		RoleNames:    make([]string, 0),
	}

	membership, err := s.storage.GetMembershipByUser(ctx, accountID, userID)
	switch {
	case errors.Is(err, storage.ErrNotFound) && user.IsSuperAdmin:
		// super admins administer accounts they do not belong to
	case err != nil:
		return nil, storeError("get membership", err)
	default:
		actor.MembershipID = membership.ID
	}

	if membership != nil && membership.Status == types.MembershipActive {
		roles, err := s.storage.ListMembershipRoles(ctx, membership.ID)
		if err != nil {
			return nil, storeError("list membership roles", err)
		}

		for _, role := range roles {
			actor.RoleNames = append(actor.RoleNames, role.Name)
		}
	}

	actor.Level = s.resolver.EffectiveLevel(actor.IsSuperAdmin, actor.RoleNames)

	return actor, nil
}

// AssignableRoles returns the role catalog of an account split by what the
// actor may grant.
func (s *Service) AssignableRoles(ctx context.Context, actor *Actor, accountID string) (*Partition, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.AssignableRoles")
	defer span.End()

	roles, err := s.storage.ListRoles(ctx, accountID)
	if err != nil {
		return nil, storeError("list roles", err)
	}

	return s.guard.Partition(actor.IsSuperAdmin, actor.Level, roles), nil
}

// AuthorizeRoleManagement rejects shaping a role the actor could not grant.
func (s *Service) AuthorizeRoleManagement(actor *Actor, roleName string) error {
	if actor == nil {
		return fmt.Errorf("%w: no actor", ErrInsufficientPrivilege)
	}

	if !s.guard.Allowed(actor.IsSuperAdmin, actor.Level, roleName) {
		s.logger.Security().AuthzFailure(actor.UserID, "role:"+Normalize(roleName))
		return fmt.Errorf("%w: level %d cannot manage role %q", ErrInsufficientPrivilege, actor.Level, roleName)
	}

	return nil
}

// AssignRolesToMembership replaces the role set of a membership and, for
// super admins acting on somebody else, the target user's super admin flag.
// Below super admin, every role granted and every role dropped must sit under
// the actor's level. Validation runs to completion before anything is written.
func (s *Service) AssignRolesToMembership(ctx context.Context, actor *Actor, membershipID string, roleIDs []string, superAdmin *bool) (err error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.AssignRolesToMembership")
	defer span.End()

	defer func() { s.recordDecision("assign_roles", err) }()

	if actor == nil {
		return fmt.Errorf("%w: no actor", ErrInsufficientPrivilege)
	}

	membership, err := s.storage.GetMembership(ctx, membershipID)
	if err != nil {
		return storeError("get membership", err)
	}

	if !actor.IsSuperAdmin && actor.AccountID != membership.AccountID {
		s.logger.Security().AuthzFailure(actor.UserID, "membership:"+membership.ID)
		return fmt.Errorf("%w: membership %s belongs to another account", ErrInsufficientPrivilege, membership.ID)
	}

	ids := dedupe(roleIDs)

	roles, err := s.rolesOfAccount(ctx, membership, ids)
	if err != nil {
		return err
	}

	if !actor.IsSuperAdmin {
		for _, role := range roles {
			if s.guard.CanAssign(actor.Level, role.Name) {
				continue
			}

			s.logger.Security().AuthzFailure(actor.UserID, "role:"+role.ID)
			return fmt.Errorf("%w: level %d cannot assign role %q", ErrInsufficientPrivilege, actor.Level, role.Name)
		}
	}

	applyFlag := false
	if superAdmin != nil {
		switch {
		case membership.UserID == actor.UserID:
			if *superAdmin != actor.IsSuperAdmin {
				s.logger.Security().AuthzFailure(actor.UserID, "user:"+actor.UserID)
				return fmt.Errorf("%w: user %s", ErrSelfPrivilegeLock, actor.UserID)
			}
		case actor.IsSuperAdmin:
			applyFlag = true
		default:
			s.logger.Debugf("ignoring super admin flag from non super admin %s", actor.UserID)
		}
	}

	if !actor.IsSuperAdmin {
		if err := s.revocable(ctx, actor, membership, ids); err != nil {
			return err
		}
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.AddMembershipRoles(ctx, membership.ID, ids); err != nil {
			return storeError("add membership roles", err)
		}

		if _, err := s.storage.PruneMembershipRoles(ctx, membership.ID, ids); err != nil {
			return storeError("prune membership roles", err)
		}

		if applyFlag {
			if err := s.storage.SetUserSuperAdmin(ctx, membership.UserID, *superAdmin); err != nil {
				return storeError("set super admin", err)
			}
		}

		return nil
	})

	if err != nil {
		s.logger.Errorf("failed to assign roles to membership %s: %v", membership.ID, err)
		return txError(err)
	}

	s.logger.Security().AuthzChange(actor.UserID, membership.UserID, "roles:"+strings.Join(ids, "+"))
	if applyFlag {
		s.logger.Security().AuthzChange(actor.UserID, membership.UserID, "super_admin:"+strconv.FormatBool(*superAdmin))
	}

	return nil
}

// revocable rejects dropping a role from the membership that the actor could
// not have granted, so the replacement cannot strip a higher tier.
func (s *Service) revocable(ctx context.Context, actor *Actor, membership *types.Membership, keep []string) error {
	current, err := s.storage.ListMembershipRoles(ctx, membership.ID)
	if err != nil {
		return storeError("list membership roles", err)
	}

	kept := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		kept[id] = struct{}{}
	}

	for _, role := range current {
		if _, ok := kept[role.ID]; ok || s.guard.CanAssign(actor.Level, role.Name) {
			continue
		}

		s.logger.Security().AuthzFailure(actor.UserID, "role:"+role.ID)
		return fmt.Errorf("%w: level %d cannot revoke role %q", ErrInsufficientPrivilege, actor.Level, role.Name)
	}

	return nil
}

// rolesOfAccount loads the roles by id and checks each of them can be
// attached to the membership.
func (s *Service) rolesOfAccount(ctx context.Context, membership *types.Membership, ids []string) ([]*types.Role, error) {
	if len(ids) == 0 {
		return []*types.Role{}, nil
	}

	found, err := s.storage.ListRolesByIDs(ctx, ids)
	if err != nil {
		return nil, storeError("list roles", err)
	}

	byID := make(map[string]*types.Role, len(found))
	for _, role := range found {
		byID[role.ID] = role
	}

	roles := make([]*types.Role, 0, len(ids))
	for _, id := range ids {
		role, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: role %s does not exist", ErrInvalidRole, id)
		}

		if _, err := types.NewMembershipRole(membership, role); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRole, err)
		}

		roles = append(roles, role)
	}

	return roles, nil
}

// ReplaceRolePermissions makes permissionIDs the exact permission set of the
// role, an empty set clears it.
func (s *Service) ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) (err error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.ReplaceRolePermissions")
	defer span.End()

	defer func() { s.recordDecision("replace_permissions", err) }()

	role, err := s.storage.GetRole(ctx, roleID)
	if err != nil {
		return storeError("get role", err)
	}

	ids := dedupe(permissionIDs)
	if err := s.permissionsExist(ctx, role, ids); err != nil {
		return err
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.AddRolePermissions(ctx, role.ID, ids); err != nil {
			return storeError("add role permissions", err)
		}

		if _, err := s.storage.PruneRolePermissions(ctx, role.ID, ids); err != nil {
			return storeError("prune role permissions", err)
		}

		return nil
	})

	if err != nil {
		s.logger.Errorf("failed to replace permissions of role %s: %v", role.ID, err)
		return txError(err)
	}

	return nil
}

func (s *Service) permissionsExist(ctx context.Context, role *types.Role, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := s.storage.ListPermissionsByIDs(ctx, ids)
	if err != nil {
		return storeError("list permissions", err)
	}

	known := make(map[string]*types.Permission, len(found))
	for _, p := range found {
		known[p.ID] = p
	}

	for _, id := range ids {
		p, ok := known[id]
		if !ok {
			return fmt.Errorf("%w: permission %s", ErrNotFound, id)
		}

		if role.ID == "" {
			continue
		}
		if _, err := types.NewRolePermission(role, p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRole, err)
		}
	}

	return nil
}

// CreateCustomRole adds a tenant defined role with its initial permissions.
func (s *Service) CreateCustomRole(ctx context.Context, accountID, name string, permissionIDs []string) (created *types.Role, err error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.CreateCustomRole")
	defer span.End()

	defer func() { s.recordDecision("create_role", err) }()

	role, err := types.NewCustomRole(accountID, name, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRole, err)
	}

	ids := dedupe(permissionIDs)
	if err := s.permissionsExist(ctx, role, ids); err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.storage.CreateRole(ctx, role)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return fmt.Errorf("%w: role %q already exists", ErrInvalidRole, role.Name)
			}
			return storeError("create role", err)
		}

		if err := s.storage.AddRolePermissions(ctx, r.ID, ids); err != nil {
			return storeError("add role permissions", err)
		}

		created = r
		return nil
	})

	if err != nil {
		s.logger.Errorf("failed to create role %q in account %s: %v", role.Name, accountID, err)
		return nil, txError(err)
	}

	return created, nil
}

// DeleteRole removes the role after its permission and membership edges.
func (s *Service) DeleteRole(ctx context.Context, roleID string) (err error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.DeleteRole")
	defer span.End()

	defer func() { s.recordDecision("delete_role", err) }()

	role, err := s.storage.GetRole(ctx, roleID)
	if err != nil {
		return storeError("get role", err)
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		permissions, err := s.storage.DeleteRolePermissionsByRole(ctx, role.ID)
		if err != nil {
			return storeError("delete role permissions", err)
		}

		memberships, err := s.storage.DeleteMembershipRolesByRole(ctx, role.ID)
		if err != nil {
			return storeError("delete membership roles", err)
		}

		if err := s.storage.DeleteRole(ctx, role.ID); err != nil {
			return storeError("delete role", err)
		}

		s.logger.Debugf("role %s deleted with %d permission and %d membership edges", role.ID, permissions, memberships)
		return nil
	})

	if err != nil {
		s.logger.Errorf("failed to delete role %s: %v", role.ID, err)
		return txError(err)
	}

	return nil
}

func (s *Service) GetRole(ctx context.Context, roleID string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.GetRole")
	defer span.End()

	role, err := s.storage.GetRole(ctx, roleID)
	if err != nil {
		return nil, storeError("get role", err)
	}

	return role, nil
}

func (s *Service) ListRoles(ctx context.Context, accountID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.ListRoles")
	defer span.End()

	roles, err := s.storage.ListRoles(ctx, accountID)
	if err != nil {
		return nil, storeError("list roles", err)
	}

	return roles, nil
}

func (s *Service) ListRolePermissions(ctx context.Context, roleID string) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.ListRolePermissions")
	defer span.End()

	permissions, err := s.storage.ListRolePermissions(ctx, roleID)
	if err != nil {
		return nil, storeError("list role permissions", err)
	}

	return permissions, nil
}

func (s *Service) ListPermissionCategories(ctx context.Context) ([]*PermissionCategory, error) {
	ctx, span := s.tracer.Start(ctx, "rbac.Service.ListPermissionCategories")
	defer span.End()

	return s.catalog.Categories(ctx)
}

func (s *Service) recordDecision(operation string, err error) {
	outcome := "allowed"
	if err != nil {
		outcome = ErrorKind(err)
	}

	if merr := s.monitor.IncrementDecisionCounter(map[string]string{"operation": operation, "outcome": outcome}); merr != nil {
		s.logger.Debugf("failed to record %s decision: %v", operation, merr)
	}
}

// txError keeps business errors raised inside a transaction and turns the
// rest, such as a failed commit, into store failures.
func txError(err error) error {
	if ErrorKind(err) != KindUnknown {
		return err
	}
	return fmt.Errorf("%w: transaction: %w", ErrStoreFailure, err)
}

// dedupe drops repeated and empty ids keeping the first occurrence order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

func NewService(
	storage StorageInterface,
	tx TxManagerInterface,
	ladder *Ladder,
	catalog PermissionCatalogInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if ladder == nil {
		ladder = DefaultLadder()
	}

	return &Service{
		storage:  storage,
		tx:       tx,
		ladder:   ladder,
		resolver: NewResolver(ladder),
		guard:    NewGuard(ladder),
		catalog:  catalog,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
