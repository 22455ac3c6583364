// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleOperador   = "operador"
	RoleUsuario    = "usuario"
)

var defaultLevels = map[string]int{
	RoleSuperAdmin: 100,
	RoleAdmin:      80,
	RoleSupervisor: 60,
	RoleOperador:   40,
	RoleUsuario:    20,
}

var errEmptyLadder = errors.New("privilege ladder has no tiers")

// Tier is a single ladder entry.
type Tier struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Ladder maps canonical role names to privilege levels. It is immutable once
// built and safe for concurrent use.
type Ladder struct {
	levels  map[string]int
	floor   int
	ceiling int
}

// Normalize folds case and collapses whitespace runs into single
// underscores, leading and trailing whitespace is dropped.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// LevelOf returns the level of a role name, unknown names get the floor.
func (l *Ladder) LevelOf(name string) int {
	if level, ok := l.levels[Normalize(name)]; ok {
		return level
	}
	return l.floor
}

// Known reports whether the name matches a ladder tier after normalization.
func (l *Ladder) Known(name string) bool {
	_, ok := l.levels[Normalize(name)]
	return ok
}

func (l *Ladder) Floor() int {
	return l.floor
}

func (l *Ladder) Ceiling() int {
	return l.ceiling
}

// Tiers returns the ladder ordered from the most to the least privileged.
func (l *Ladder) Tiers() []Tier {
	tiers := make([]Tier, 0, len(l.levels))
	for name, level := range l.levels {
		tiers = append(tiers, Tier{Name: name, Level: level})
	}

	sort.Slice(tiers, func(i, j int) bool {
		if tiers[i].Level == tiers[j].Level {
			return tiers[i].Name < tiers[j].Name
		}
		return tiers[i].Level > tiers[j].Level
	})

	return tiers
}

// NewLadder validates levels and builds a Ladder from them, keys are
// normalized and every level must be positive.
func NewLadder(levels map[string]int) (*Ladder, error) {
	if len(levels) == 0 {
		return nil, errEmptyLadder
	}

	l := &Ladder{levels: make(map[string]int, len(levels))}

	first := true
	for name, level := range levels {
		key := Normalize(name)
		if key == "" {
			return nil, fmt.Errorf("privilege ladder has an empty role name")
		}

		if level <= 0 {
			return nil, fmt.Errorf("privilege level of %q must be positive, got %d", key, level)
		}

		if _, ok := l.levels[key]; ok {
			return nil, fmt.Errorf("role name %q appears twice in the privilege ladder", key)
		}

		l.levels[key] = level

		if first || level < l.floor {
			l.floor = level
		}
		if first || level > l.ceiling {
			l.ceiling = level
		}
		first = false
	}

	return l, nil
}

// DefaultLadder returns the built in role tiers.
func DefaultLadder() *Ladder {
	l, err := NewLadder(defaultLevels)
	if err != nil {
		panic(err)
	}
	return l
}
