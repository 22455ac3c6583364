// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"context"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/internal/types"
)

const categoriesKey = "categories"

// PermissionCatalog serves the global permission catalog grouped by
// category. The catalog is seeded by migrations and changes rarely, so the
// grouped view is kept in an expirable LRU.
type PermissionCatalog struct {
	storage StorageInterface
	cache   *lru.LRU[string, []*PermissionCategory]

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *PermissionCatalog) Categories(ctx context.Context) ([]*PermissionCategory, error) {
	ctx, span := c.tracer.Start(ctx, "rbac.PermissionCatalog.Categories")
	defer span.End()

	if categories, ok := c.cache.Get(categoriesKey); ok {
		return categories, nil
	}

	permissions, err := c.storage.ListPermissions(ctx)
	if err != nil {
		c.logger.Errorf("failed to list permissions: %v", err)
		return nil, storeError("list permissions", err)
	}

	categories := groupByCategory(permissions)
	c.cache.Add(categoriesKey, categories)

	return categories, nil
}

func (c *PermissionCatalog) Invalidate() {
	c.cache.Purge()
}

func groupByCategory(permissions []*types.Permission) []*PermissionCategory {
	index := make(map[string]*PermissionCategory)
	categories := make([]*PermissionCategory, 0)

	for _, p := range permissions {
		cat, ok := index[p.Category]
		if !ok {
			cat = &PermissionCategory{Category: p.Category, Permissions: make([]*types.Permission, 0)}
			index[p.Category] = cat
			categories = append(categories, cat)
		}
		cat.Permissions = append(cat.Permissions, p)
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })
	for _, cat := range categories {
		sort.Slice(cat.Permissions, func(i, j int) bool { return cat.Permissions[i].Code < cat.Permissions[j].Code })
	}

	return categories
}

func NewPermissionCatalog(storage StorageInterface, size int, ttl time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *PermissionCatalog {
	if size <= 0 {
		size = 1
	}

	return &PermissionCatalog{
		storage: storage,
		cache:   lru.NewLRU[string, []*PermissionCategory](size, nil, ttl),
		tracer:  tracer,
		logger:  logger,
	}
}
