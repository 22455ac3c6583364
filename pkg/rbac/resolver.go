// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

// Resolver computes the effective privilege level of an actor.
type Resolver struct {
	ladder *Ladder
}

// EffectiveLevel is total: super admins always get the ladder ceiling and an
// actor without roles gets the floor.
func (r *Resolver) EffectiveLevel(isSuperAdmin bool, roleNames []string) int {
	if isSuperAdmin {
		return r.ladder.Ceiling()
	}

	if len(roleNames) == 0 {
		return r.ladder.Floor()
	}

	level := r.ladder.Floor()
	for _, name := range roleNames {
		level = max(level, r.ladder.LevelOf(name))
	}

	return level
}

func NewResolver(ladder *Ladder) *Resolver {
	return &Resolver{ladder: ladder}
}
