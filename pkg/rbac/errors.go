// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"errors"
	"fmt"

	"github.com/canonical/rbac-service/internal/storage"
)

var (
	ErrInvalidRole           = errors.New("invalid role")
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
	ErrSelfPrivilegeLock     = errors.New("cannot change own super admin flag")
	ErrNotFound              = errors.New("not found")
	ErrStoreFailure          = errors.New("store failure")
)

const (
	KindInvalidRole           = "invalid_role"
	KindInsufficientPrivilege = "insufficient_privilege"
	KindSelfPrivilegeLock     = "self_privilege_lock"
	KindNotFound              = "not_found"
	KindStoreFailure          = "store_failure"
	KindUnknown               = "unknown"
)

// ErrorKind maps an error returned by this package to a stable identifier.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidRole):
		return KindInvalidRole
	case errors.Is(err, ErrInsufficientPrivilege):
		return KindInsufficientPrivilege
	case errors.Is(err, ErrSelfPrivilegeLock):
		return KindSelfPrivilegeLock
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrStoreFailure):
		return KindStoreFailure
	}
	return KindUnknown
}

// storeError converts a storage error. Missing rows and dangling references
// become ErrNotFound, everything else is a store failure wrapping the cause.
func storeError(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrForeignKeyViolation) {
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreFailure, op, err)
}
