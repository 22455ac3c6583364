// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	rpcStatus "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/proto"
)

func TestForwardErrorResponseRewriter(t *testing.T) {
	untouchedResponse := &errdetails.ErrorInfo{Reason: "untouched"}

	tests := []struct {
		name     string
		response proto.Message
		expected any
	}{
		{
			name:     "Valid grpc status",
			response: &rpcStatus.Status{Code: int32(codes.NotFound), Message: "Resource not found"},
			expected: &ErrorResponse{
				Status:  int32(http.StatusNotFound),
				Message: "Resource not found",
			},
		},
		{
			name:     "Status with reason",
			response: NewStatus(codes.PermissionDenied, "insufficient_privilege", "cannot assign role").Proto(),
			expected: &ErrorResponse{
				Status:  int32(http.StatusForbidden),
				Message: "cannot assign role",
				Reason:  "insufficient_privilege",
			},
		},
		{
			name:     "Failed precondition",
			response: NewStatus(codes.FailedPrecondition, "self_privilege_lock", "locked").Proto(),
			expected: &ErrorResponse{
				Status:  int32(http.StatusBadRequest),
				Message: "locked",
				Reason:  "self_privilege_lock",
			},
		},
		{
			name:     "Invalid response type",
			response: untouchedResponse,
			expected: untouchedResponse,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, _ := ForwardErrorResponseRewriter(context.Background(), test.response)

			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected result: %v, got: %v", test.expected, result)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, NewStatus(codes.InvalidArgument, "invalid_role", "role r-1 does not exist"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %s", ct)
	}

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Reason != "invalid_role" || body.Status != http.StatusBadRequest {
		t.Errorf("unexpected body %+v", body)
	}
}
