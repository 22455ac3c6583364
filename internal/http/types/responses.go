// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	rpcStatus "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

const errorDomain = "rbac.canonical.com"

// ErrorResponse is the json body of every failed request, Reason is a
// stable machine readable identifier the UI maps to a message.
type ErrorResponse struct {
	Status  int32  `json:"status"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewStatus builds a status carrying reason as an ErrorInfo detail.
func NewStatus(code codes.Code, reason, message string) *status.Status {
	st := status.New(code, message)

	if reason == "" {
		return st
	}

	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: errorDomain})
	if err != nil {
		return st
	}

	return withDetails
}

// ForwardErrorResponseRewriter rewrites error message to comply with Admin UI
// standard json response for errors. It doesn't do anything on other messages
func ForwardErrorResponseRewriter(_ context.Context, response proto.Message) (any, error) {
	codeError, ok := response.(*rpcStatus.Status)
	if !ok {
		return response, nil
	}

	httpStatus := runtime.HTTPStatusFromCode(
		codes.Code(codeError.Code),
	)

	resp := &ErrorResponse{
		Status:  int32(httpStatus),
		Message: codeError.GetMessage(),
	}

	for _, detail := range codeError.GetDetails() {
		info := new(errdetails.ErrorInfo)
		if err := detail.UnmarshalTo(info); err == nil {
			resp.Reason = info.GetReason()
			break
		}
	}

	return resp, nil
}

// WriteError renders st as an ErrorResponse with the matching http status.
func WriteError(w http.ResponseWriter, st *status.Status) {
	body, _ := ForwardErrorResponseRewriter(context.Background(), st.Proto())

	resp := body.(*ErrorResponse)
	WriteJSON(w, int(resp.Status), resp)
}

func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(body)
}
