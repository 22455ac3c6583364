// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"github.com/canonical/rbac-service/internal/types"
)

// Partition splits a role catalog by assignability, input order is preserved.
type Partition struct {
	Assignable []*types.Role `json:"assignable"`
	Blocked    []*types.Role `json:"blocked"`
}

// Guard decides which roles an actor may grant to somebody else.
type Guard struct {
	ladder *Ladder
}

// CanAssign holds only when the actor strictly dominates the role, nobody
// can grant their own tier.
func (g *Guard) CanAssign(actorLevel int, roleName string) bool {
	return actorLevel > g.ladder.LevelOf(roleName)
}

// Allowed is CanAssign plus the super admin bypass. The bypass is its own
// branch: no level is above the ceiling, so CanAssign never admits super_admin.
func (g *Guard) Allowed(actorIsSuperAdmin bool, actorLevel int, roleName string) bool {
	if actorIsSuperAdmin {
		return true
	}
	return g.CanAssign(actorLevel, roleName)
}

// Partition places every non nil role in exactly one of the two lists. Nil
// entries carry no name to rank and are dropped, so the lists add up to the
// number of non nil roles given.
func (g *Guard) Partition(actorIsSuperAdmin bool, actorLevel int, roles []*types.Role) *Partition {
	p := &Partition{
		Assignable: make([]*types.Role, 0, len(roles)),
		Blocked:    make([]*types.Role, 0),
	}

	for _, role := range roles {
		if role == nil {
			continue
		}

		if g.Allowed(actorIsSuperAdmin, actorLevel, role.Name) {
			p.Assignable = append(p.Assignable, role)
		} else {
			p.Blocked = append(p.Blocked, role)
		}
	}

	return p
}

func NewGuard(ladder *Ladder) *Guard {
	return &Guard{ladder: ladder}
}
