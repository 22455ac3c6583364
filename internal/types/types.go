// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyRoleName = errors.New("role name must not be empty")
	ErrUnsavedRecord = errors.New("record has no id")
	ErrScopeMismatch = errors.New("records belong to different accounts")
)

type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "active"
	MembershipInactive MembershipStatus = "inactive"
	MembershipPending  MembershipStatus = "pending"
)

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipActive, MembershipInactive, MembershipPending:
		return true
	}
	return false
}

type Account struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// User is a global identity, IsSuperAdmin is the only privilege that is
// not scoped to an account.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	IsSuperAdmin bool      `db:"is_super_admin" json:"is_super_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Membership struct {
	ID        string           `db:"id" json:"id"`
	AccountID string           `db:"account_id" json:"account_id"`
	UserID    string           `db:"user_id" json:"user_id"`
	Status    MembershipStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

type Role struct {
	ID              string    `db:"id" json:"id"`
	AccountID       string    `db:"account_id" json:"account_id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	IsSystemDefined bool      `db:"is_system_defined" json:"is_system_defined"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Permission is a global catalog entry, it is never scoped to an account.
type Permission struct {
	ID          string `db:"id" json:"id"`
	Code        string `db:"code" json:"code"`
	Category    string `db:"category" json:"category"`
	Description string `db:"description" json:"description"`
}

type RolePermission struct {
	RoleID       string `db:"role_id" json:"role_id"`
	PermissionID string `db:"permission_id" json:"permission_id"`
}

type MembershipRole struct {
	MembershipID string `db:"membership_id" json:"membership_id"`
	RoleID       string `db:"role_id" json:"role_id"`
}

// NewCustomRole builds a tenant defined role, user created roles are never
// system defined.
func NewCustomRole(accountID, name, description string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoleName
	}

	if accountID == "" {
		return nil, fmt.Errorf("account: %w", ErrUnsavedRecord)
	}

	return &Role{
		AccountID:       accountID,
		Name:            name,
		Description:     strings.TrimSpace(description),
		IsSystemDefined: false,
	}, nil
}

// NewRolePermission links a persisted role to a persisted permission.
// Permissions are global so no account check applies to this edge.
func NewRolePermission(role *Role, permission *Permission) (*RolePermission, error) {
	if role == nil || role.ID == "" {
		return nil, fmt.Errorf("role: %w", ErrUnsavedRecord)
	}

	if permission == nil || permission.ID == "" {
		return nil, fmt.Errorf("permission: %w", ErrUnsavedRecord)
	}

	return &RolePermission{RoleID: role.ID, PermissionID: permission.ID}, nil
}

// NewMembershipRole links a membership to a role of the same account.
func NewMembershipRole(membership *Membership, role *Role) (*MembershipRole, error) {
	if membership == nil || membership.ID == "" {
		return nil, fmt.Errorf("membership: %w", ErrUnsavedRecord)
	}

	if role == nil || role.ID == "" {
		return nil, fmt.Errorf("role: %w", ErrUnsavedRecord)
	}

	if membership.AccountID != role.AccountID {
		return nil, fmt.Errorf("role %s, membership %s: %w", role.ID, membership.ID, ErrScopeMismatch)
	}

	return &MembershipRole{MembershipID: membership.ID, RoleID: role.ID}, nil
}
