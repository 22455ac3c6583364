// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/canonical/rbac-service/internal/http/types"
	"github.com/canonical/rbac-service/internal/logging"
)

var errRequestFailed = errors.New("request failed")

// TransactionMiddleware creates a middleware that wraps each write request in a database transaction.
// The transaction is committed if the handler completes successfully (status < 400) and rolled back otherwise.
// The response is held back until the outcome is known, a failed commit is reported as a storage failure
// instead of the buffered success.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			rw := &bufferedWriter{header: make(http.Header), statusCode: http.StatusOK}

			err := db.WithTx(ctx, func(txCtx context.Context) error {
				next.ServeHTTP(rw, r.WithContext(txCtx))

				if rw.statusCode >= 400 {
					return fmt.Errorf("%w with status %d", errRequestFailed, rw.statusCode)
				}

				return nil
			})

			if err != nil && !errors.Is(err, errRequestFailed) {
				logger.Errorf("transaction failed for %s %s: %v", r.Method, r.URL.Path, err)
				types.WriteError(w, types.NewStatus(codes.Internal, "store_failure", "storage failure, reload the current state before retrying"))
				return
			}

			if err != nil {
				logger.Debugf("transaction not committed for %s %s: %v", r.Method, r.URL.Path, err)
			}

			rw.flush(w)
		})
	}
}

type bufferedWriter struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

func (rw *bufferedWriter) Header() http.Header {
	return rw.header
}

func (rw *bufferedWriter) Write(b []byte) (int, error) {
	return rw.body.Write(b)
}

func (rw *bufferedWriter) WriteHeader(code int) {
	rw.statusCode = code
}

func (rw *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range rw.header {
		w.Header()[k] = v
	}

	w.WriteHeader(rw.statusCode)
	_, _ = w.Write(rw.body.Bytes())
}
