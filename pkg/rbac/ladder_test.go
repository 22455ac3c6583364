// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"errors"
	"strings"
	"testing"

	"github.com/canonical/rbac-service/internal/storage"
	"github.com/canonical/rbac-service/internal/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "admin", expected: "admin"},
		{input: "ADMIN ", expected: "admin"},
		{input: "  Super   Admin\t", expected: "super_admin"},
		{input: "super_admin", expected: "super_admin"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLadder_LevelOf(t *testing.T) {
	l := DefaultLadder()

	tests := []struct {
		name     string
		expected int
	}{
		{name: "super_admin", expected: 100},
		{name: "Admin", expected: 80},
		{name: "SUPERVISOR", expected: 60},
		{name: "operador", expected: 40},
		{name: "usuario", expected: 20},
		{name: "billing-clerk", expected: 20},
		{name: "", expected: 20},
		{name: "administrator", expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.LevelOf(tt.name); got != tt.expected {
				t.Errorf("expected level %d for %q, got %d", tt.expected, tt.name, got)
			}
		})
	}
}

func TestLadder_LevelOfIsCaseInsensitive(t *testing.T) {
	l := DefaultLadder()

	for _, name := range []string{"admin", "Supervisor", "super admin", "custom role", "operador "} {
		if l.LevelOf(Normalize(name)) != l.LevelOf(Normalize(strings.ToUpper(name))) {
			t.Errorf("level of %q depends on case", name)
		}
	}
}

func TestLadder_Bounds(t *testing.T) {
	l := DefaultLadder()

	if l.Floor() != 20 {
		t.Errorf("expected floor 20, got %d", l.Floor())
	}

	if l.Ceiling() != 100 {
		t.Errorf("expected ceiling 100, got %d", l.Ceiling())
	}

	tiers := l.Tiers()
	if len(tiers) != 5 {
		t.Fatalf("expected 5 tiers, got %d", len(tiers))
	}

	if tiers[0].Name != RoleSuperAdmin || tiers[4].Name != RoleUsuario {
		t.Errorf("expected tiers ordered from super_admin to usuario, got %v", tiers)
	}
}

func TestNewLadder(t *testing.T) {
	tests := []struct {
		name        string
		levels      map[string]int
		expectedErr bool
		floor       int
		ceiling     int
	}{
		{
			name:    "custom ladder",
			levels:  map[string]int{"Owner": 50, "member": 10},
			floor:   10,
			ceiling: 50,
		},
		{
			name:        "empty",
			levels:      map[string]int{},
			expectedErr: true,
		},
		{
			name:        "non positive level",
			levels:      map[string]int{"admin": 0},
			expectedErr: true,
		},
		{
			name:        "collision after normalization",
			levels:      map[string]int{"Super Admin": 100, "super_admin": 90},
			expectedErr: true,
		},
		{
			name:        "blank name",
			levels:      map[string]int{"  ": 10},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLadder(tt.levels)

			if tt.expectedErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if l.Floor() != tt.floor || l.Ceiling() != tt.ceiling {
				t.Errorf("expected bounds %d..%d, got %d..%d", tt.floor, tt.ceiling, l.Floor(), l.Ceiling())
			}

			if l.LevelOf("OWNER") != 50 {
				t.Errorf("expected normalized lookup of OWNER to be 50, got %d", l.LevelOf("OWNER"))
			}
		})
	}
}

func TestResolver_EffectiveLevel(t *testing.T) {
	r := NewResolver(DefaultLadder())

	tests := []struct {
		name         string
		isSuperAdmin bool
		roles        []string
		expected     int
	}{
		{name: "super admin without roles", isSuperAdmin: true, roles: nil, expected: 100},
		{name: "super admin with low roles", isSuperAdmin: true, roles: []string{"usuario"}, expected: 100},
		{name: "no roles", roles: []string{}, expected: 20},
		{name: "nil roles", roles: nil, expected: 20},
		{name: "highest role wins", roles: []string{"operador", "Admin", "supervisor"}, expected: 80},
		{name: "unknown roles only", roles: []string{"auditor"}, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.EffectiveLevel(tt.isSuperAdmin, tt.roles); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGuard_CanAssign(t *testing.T) {
	l := DefaultLadder()
	g := NewGuard(l)

	for _, tier := range l.Tiers() {
		if g.CanAssign(tier.Level, tier.Name) {
			t.Errorf("level %d must not grant its own tier %s", tier.Level, tier.Name)
		}

		if !g.CanAssign(tier.Level+1, tier.Name) {
			t.Errorf("level %d must grant %s", tier.Level+1, tier.Name)
		}
	}

	tests := []struct {
		name     string
		level    int
		role     string
		expected bool
	}{
		{name: "admin grants supervisor", level: 80, role: RoleSupervisor, expected: true},
		{name: "supervisor cannot grant admin", level: 60, role: RoleAdmin, expected: false},
		{name: "supervisor cannot grant supervisor", level: 60, role: RoleSupervisor, expected: false},
		{name: "ceiling cannot grant super admin", level: 100, role: RoleSuperAdmin, expected: false},
		{name: "floor cannot grant unknown role", level: 20, role: "custom", expected: false},
		{name: "operador grants unknown role", level: 40, role: "custom", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CanAssign(tt.level, tt.role); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGuard_Partition(t *testing.T) {
	g := NewGuard(DefaultLadder())

	roles := []*types.Role{
		{ID: "r-1", Name: "admin"},
		{ID: "r-2", Name: "supervisor"},
		{ID: "r-3", Name: "operador"},
		{ID: "r-4", Name: "super_admin"},
		{ID: "r-5", Name: "helpdesk"},
	}

	tests := []struct {
		name       string
		superAdmin bool
		level      int
		assignable []string
		blocked    []string
	}{
		{
			name:       "supervisor",
			level:      60,
			assignable: []string{"r-3", "r-5"},
			blocked:    []string{"r-1", "r-2", "r-4"},
		},
		{
			name:       "admin",
			level:      80,
			assignable: []string{"r-2", "r-3", "r-5"},
			blocked:    []string{"r-1", "r-4"},
		},
		{
			name:       "super admin",
			superAdmin: true,
			level:      100,
			assignable: []string{"r-1", "r-2", "r-3", "r-4", "r-5"},
			blocked:    []string{},
		},
		{
			name:       "floor",
			level:      20,
			assignable: []string{},
			blocked:    []string{"r-1", "r-2", "r-3", "r-4", "r-5"},
		},
	}

	ids := func(roles []*types.Role) []string {
		out := make([]string, 0, len(roles))
		for _, r := range roles {
			out = append(out, r.ID)
		}
		return out
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := g.Partition(tt.superAdmin, tt.level, roles)

			if p.Assignable == nil || p.Blocked == nil {
				t.Fatal("expected non nil partitions")
			}

			if len(p.Assignable)+len(p.Blocked) != len(roles) {
				t.Errorf("partition lost roles: %d + %d != %d", len(p.Assignable), len(p.Blocked), len(roles))
			}

			if got := strings.Join(ids(p.Assignable), ","); got != strings.Join(tt.assignable, ",") {
				t.Errorf("expected assignable %v, got %v", tt.assignable, got)
			}

			if got := strings.Join(ids(p.Blocked), ","); got != strings.Join(tt.blocked, ",") {
				t.Errorf("expected blocked %v, got %v", tt.blocked, got)
			}
		})
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{err: nil, expected: ""},
		{err: ErrInvalidRole, expected: KindInvalidRole},
		{err: storeError("get role", errors.New("connection reset")), expected: KindStoreFailure},
		{err: storeError("get role", storage.ErrNotFound), expected: KindNotFound},
		{err: txError(errors.New("commit failed")), expected: KindStoreFailure},
		{err: txError(ErrSelfPrivilegeLock), expected: KindSelfPrivilegeLock},
		{err: txError(ErrInsufficientPrivilege), expected: KindInsufficientPrivilege},
		{err: ErrNotFound, expected: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGuard_PartitionDropsNilRoles(t *testing.T) {
	g := NewGuard(DefaultLadder())

	roles := []*types.Role{nil, {ID: "r-1", Name: "operador"}, nil, {ID: "r-2", Name: "admin"}}

	p := g.Partition(false, 60, roles)

	if len(p.Assignable) != 1 || p.Assignable[0].ID != "r-1" {
		t.Errorf("expected only r-1 assignable, got %v", p.Assignable)
	}

	if len(p.Blocked) != 1 || p.Blocked[0].ID != "r-2" {
		t.Errorf("expected only r-2 blocked, got %v", p.Blocked)
	}

	if empty := g.Partition(true, 100, []*types.Role{nil}); len(empty.Assignable) != 0 || len(empty.Blocked) != 0 {
		t.Errorf("expected an empty partition, got %+v", empty)
	}
}
