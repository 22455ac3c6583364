// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"github.com/canonical/rbac-service/internal/types"
)

// Actor is the caller of an operation, resolved for a single account.
type Actor struct {
	UserID       string   `json:"user_id"`
	AccountID    string   `json:"account_id"`
	MembershipID string   `json:"membership_id,omitempty"`
	IsSuperAdmin bool     `json:"is_super_admin"`
	RoleNames    []string `json:"roles"`
	Level        int      `json:"level"`
}

type PermissionCategory struct {
	Category    string              `json:"category"`
	Permissions []*types.Permission `json:"permissions"`
}
