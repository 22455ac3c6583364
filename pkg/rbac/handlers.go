// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	httptypes "github.com/canonical/rbac-service/internal/http/types"
	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/internal/types"
	"github.com/canonical/rbac-service/pkg/authentication"
)

const (
	reasonUnauthenticated = "unauthenticated"
	reasonBadRequest      = "bad_request"
	reasonRateLimited     = "rate_limited"
)

type CreateRoleRequest struct {
	Name          string   `json:"name" validate:"required,max=128"`
	PermissionIDs []string `json:"permission_ids" validate:"dive,required"`
}

// ReplacePermissionsRequest requires the field to be present, an empty list
// clears the role.
type ReplacePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" validate:"required,dive,required"`
}

type AssignRolesRequest struct {
	RoleIDs    []string `json:"role_ids" validate:"required,dive,required"`
	SuperAdmin *bool    `json:"super_admin,omitempty"`
}

type API struct {
	service   ServiceInterface
	validator *validator.Validate
	limiter   func(http.Handler) http.Handler

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/v0/ladder", a.handleLadder)
	r.Get("/api/v0/permissions", a.handlePermissions)

	r.Route("/api/v0/accounts/{account_id}", func(r chi.Router) {
		r.Get("/me", a.handleMe)
		r.Get("/roles", a.handleListRoles)
		r.Get("/roles/{role_id}/permissions", a.handleListRolePermissions)

		r.Group(func(r chi.Router) {
			r.Use(a.limiter)

			r.Post("/roles", a.handleCreateRole)
			r.Delete("/roles/{role_id}", a.handleDeleteRole)
			r.Put("/roles/{role_id}/permissions", a.handleReplaceRolePermissions)
			r.Put("/memberships/{membership_id}/roles", a.handleAssignRoles)
		})
	})
}

func (a *API) handleLadder(w http.ResponseWriter, r *http.Request) {
	ok(w, a.service.LadderTiers(), "")
}

func (a *API) handlePermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.handlePermissions")
	defer span.End()

	categories, err := a.service.ListPermissionCategories(ctx)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	ok(w, categories, "")
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, found := a.actor(w, r)
	if !found {
		return
	}

	ok(w, actor, "")
}

func (a *API) handleListRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.handleListRoles")
	defer span.End()

	actor, found := a.actor(w, r.WithContext(ctx))
	if !found {
		return
	}

	partition, err := a.service.AssignableRoles(ctx, actor, chi.URLParam(r, "account_id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	ok(w, partition, "")
}

func (a *API) handleListRolePermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.handleListRolePermissions")
	defer span.End()

	if _, found := a.actor(w, r.WithContext(ctx)); !found {
		return
	}

	role, found := a.role(w, r.WithContext(ctx))
	if !found {
		return
	}

	permissions, err := a.service.ListRolePermissions(ctx, role.ID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	ok(w, permissions, "")
}

func (a *API) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.handleCreateRole")
	defer span.End()

	actor, found := a.actor(w, r.WithContext(ctx))
	if !found {
		return
	}

	req := new(CreateRoleRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.service.AuthorizeRoleManagement(actor, req.Name); err != nil {
		a.writeServiceError(w, err)
		return
	}

	role, err := a.service.CreateCustomRole(ctx, chi.URLParam(r, "account_id"), req.Name, req.PermissionIDs)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.logger.Security().AdminAction(actor.UserID, "role_create:"+role.ID)

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{Data: role, Message: "role created", Status: http.StatusCreated})
}

func (a *API) handleDeleteRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.handleDeleteRole")
	defer span.End()

	actor, found := a.actor(w, r.WithContext(ctx))
	if !found {
		return
	}

	role, found := a.role(w, r.WithContext(ctx))
	if !found {
		return
	}

	if err := a.service.AuthorizeRoleManagement(actor, role.Name); err != nil {
		a.writeServiceError(w, err)
		return
	}

	if err := a.service.DeleteRole(ctx, role.ID); err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.logger.Security().AdminAction(actor.UserID, "role_delete:"+role.ID)

	ok(w, nil, "role deleted")
}

func (a *API) handleReplaceRolePermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.handleReplaceRolePermissions")
	defer span.End()

	actor, found := a.actor(w, r.WithContext(ctx))
	if !found {
		return
	}

	role, found := a.role(w, r.WithContext(ctx))
	if !found {
		return
	}

	req := new(ReplacePermissionsRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.service.AuthorizeRoleManagement(actor, role.Name); err != nil {
		a.writeServiceError(w, err)
		return
	}

	if err := a.service.ReplaceRolePermissions(ctx, role.ID, req.PermissionIDs); err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.logger.Security().AdminAction(actor.UserID, "role_permissions:"+role.ID)

	ok(w, nil, "permissions replaced")
}

func (a *API) handleAssignRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rbac.API.handleAssignRoles")
	defer span.End()

	actor, found := a.actor(w, r.WithContext(ctx))
	if !found {
		return
	}

	req := new(AssignRolesRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.service.AssignRolesToMembership(ctx, actor, chi.URLParam(r, "membership_id"), req.RoleIDs, req.SuperAdmin); err != nil {
		a.writeServiceError(w, err)
		return
	}

	ok(w, nil, "roles assigned")
}

// actor resolves the authenticated caller for the account of the path. Not
// being a member of the account means not being allowed in.
func (a *API) actor(w http.ResponseWriter, r *http.Request) (*Actor, bool) {
	userID, found := authentication.GetUserID(r.Context())
	if !found {
		httptypes.WriteError(w, httptypes.NewStatus(codes.Unauthenticated, reasonUnauthenticated, "unauthenticated"))
		return nil, false
	}

	accountID := chi.URLParam(r, "account_id")

	actor, err := a.service.ResolveActor(r.Context(), accountID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.logger.Security().AuthzFailure(userID, "account:"+accountID)
			httptypes.WriteError(w, httptypes.NewStatus(codes.PermissionDenied, KindInsufficientPrivilege, "not a member of this account"))
			return nil, false
		}

		a.writeServiceError(w, err)
		return nil, false
	}

	return actor, true
}

// role loads the role of the path, roles of other accounts are reported as
// missing.
func (a *API) role(w http.ResponseWriter, r *http.Request) (*types.Role, bool) {
	role, err := a.service.GetRole(r.Context(), chi.URLParam(r, "role_id"))
	if err != nil {
		a.writeServiceError(w, err)
		return nil, false
	}

	if role.AccountID != chi.URLParam(r, "account_id") {
		a.writeServiceError(w, fmt.Errorf("%w: role %s", ErrNotFound, role.ID))
		return nil, false
	}

	return role, true
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(req); err != nil {
		a.logger.Debugf("invalid request body: %v", err)
		httptypes.WriteError(w, httptypes.NewStatus(codes.InvalidArgument, reasonBadRequest, "invalid request body"))
		return false
	}

	if err := a.validator.Struct(req); err != nil {
		httptypes.WriteError(w, httptypes.NewStatus(codes.InvalidArgument, reasonBadRequest, validationMessage(err)))
		return false
	}

	return true
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	st := statusFromError(err)
	if st.Code() == codes.Internal {
		a.logger.Errorf("request failed: %v", err)
	}

	httptypes.WriteError(w, st)
}

func statusFromError(err error) *status.Status {
	kind := ErrorKind(err)

	switch kind {
	case KindNotFound:
		return httptypes.NewStatus(codes.NotFound, kind, err.Error())
	case KindInvalidRole:
		return httptypes.NewStatus(codes.InvalidArgument, kind, err.Error())
	case KindInsufficientPrivilege:
		return httptypes.NewStatus(codes.PermissionDenied, kind, err.Error())
	case KindSelfPrivilegeLock:
		return httptypes.NewStatus(codes.FailedPrecondition, kind, err.Error())
	case KindStoreFailure:
		return httptypes.NewStatus(codes.Internal, kind, "storage failure, reload the current state before retrying")
	}

	return httptypes.NewStatus(codes.Internal, KindUnknown, "internal error")
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}

	return strings.Join(messages, "; ")
}

func ok(w http.ResponseWriter, data any, message string) {
	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: data, Message: message, Status: http.StatusOK})
}

func rateLimitKey(r *http.Request) (string, error) {
	if userID, found := authentication.GetUserID(r.Context()); found {
		return "user:" + userID, nil
	}

	key, err := httprate.KeyByIP(r)
	if err != nil {
		return "", err
	}

	return "ip:" + key, nil
}

func newMutationLimiter(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(rateLimitKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			httptypes.WriteError(w, httptypes.NewStatus(codes.ResourceExhausted, reasonRateLimited, "too many requests"))
		}),
	)
}

func NewAPI(
	service ServiceInterface,
	mutationsPerMinute int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		limiter:   newMutationLimiter(mutationsPerMinute),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
