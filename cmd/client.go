// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"github.com/canonical/rbac-service/internal/http/types"
	"github.com/canonical/rbac-service/internal/identity"
	rtypes "github.com/canonical/rbac-service/internal/types"
	"github.com/canonical/rbac-service/pkg/rbac"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

// apiClient talks to the rbac endpoints of a running server.
type apiClient struct {
	http *resty.Client
}

func (c *apiClient) do(method, path string, body, out any) (string, error) {
	var (
		result envelope
		failed types.ErrorResponse
	)

	req := c.http.R().SetResult(&result).SetError(&failed)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", path, err)
	}

	if resp.IsError() {
		if failed.Reason != "" {
			return "", fmt.Errorf("%s: %s (%s)", resp.Status(), failed.Message, failed.Reason)
		}
		return "", fmt.Errorf("%s: %s", resp.Status(), resp.String())
	}

	if out != nil && len(result.Data) > 0 {
		if err := json.Unmarshal(result.Data, out); err != nil {
			return "", fmt.Errorf("failed to decode response of %s: %w", path, err)
		}
	}

	return result.Message, nil
}

func (c *apiClient) Ladder() ([]rbac.Tier, error) {
	var tiers []rbac.Tier
	_, err := c.do(http.MethodGet, "/api/v0/ladder", nil, &tiers)
	return tiers, err
}

func (c *apiClient) Permissions() ([]*rbac.PermissionCategory, error) {
	var categories []*rbac.PermissionCategory
	_, err := c.do(http.MethodGet, "/api/v0/permissions", nil, &categories)
	return categories, err
}

func (c *apiClient) Me(accountID string) (*rbac.Actor, error) {
	actor := new(rbac.Actor)
	_, err := c.do(http.MethodGet, accountPath(accountID, "/me"), nil, actor)
	return actor, err
}

func (c *apiClient) Roles(accountID string) (*rbac.Partition, error) {
	partition := new(rbac.Partition)
	_, err := c.do(http.MethodGet, accountPath(accountID, "/roles"), nil, partition)
	return partition, err
}

func (c *apiClient) CreateRole(accountID, name string, permissionIDs []string) (*rtypes.Role, error) {
	role := new(rtypes.Role)
	_, err := c.do(
		http.MethodPost,
		accountPath(accountID, "/roles"),
		rbac.CreateRoleRequest{Name: name, PermissionIDs: permissionIDs},
		role,
	)
	return role, err
}

func (c *apiClient) DeleteRole(accountID, roleID string) error {
	_, err := c.do(http.MethodDelete, accountPath(accountID, "/roles/"+roleID), nil, nil)
	return err
}

func (c *apiClient) RolePermissions(accountID, roleID string) ([]*rtypes.Permission, error) {
	var permissions []*rtypes.Permission
	_, err := c.do(http.MethodGet, accountPath(accountID, "/roles/"+roleID+"/permissions"), nil, &permissions)
	return permissions, err
}

func (c *apiClient) ReplacePermissions(accountID, roleID string, permissionIDs []string) error {
	if permissionIDs == nil {
		permissionIDs = []string{}
	}

	_, err := c.do(
		http.MethodPut,
		accountPath(accountID, "/roles/"+roleID+"/permissions"),
		rbac.ReplacePermissionsRequest{PermissionIDs: permissionIDs},
		nil,
	)
	return err
}

func (c *apiClient) AssignRoles(accountID, membershipID string, roleIDs []string, superAdmin *bool) error {
	if roleIDs == nil {
		roleIDs = []string{}
	}

	_, err := c.do(
		http.MethodPut,
		accountPath(accountID, "/memberships/"+membershipID+"/roles"),
		rbac.AssignRolesRequest{RoleIDs: roleIDs, SuperAdmin: superAdmin},
		nil,
	)
	return err
}

func accountPath(accountID, suffix string) string {
	return "/api/v0/accounts/" + accountID + suffix
}

// newAPIClient retries transport failures only, error statuses are returned
// to the caller as they are. A static token wins over a token source, which
// wins over the identity header.
func newAPIClient(baseURL, token string, source oauth2.TokenSource, user string, timeout time.Duration) *apiClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	switch {
	case token != "":
		client.SetAuthToken(token)
	case source != nil:
		client.SetTransport(&oauth2.Transport{Source: source, Base: http.DefaultTransport})
	case user != "":
		client.SetHeader(identity.HeaderName, user)
	}

	return &apiClient{http: client}
}

func getClient(ctx context.Context) (*apiClient, error) {
	var source oauth2.TokenSource

	if creds := flagCredentials(); accessToken == "" && creds.enabled() {
		s, err := creds.tokenSource(ctx)
		if err != nil {
			return nil, err
		}
		source = s
	}

	return newAPIClient(endpoint, accessToken, source, userID, timeout), nil
}
