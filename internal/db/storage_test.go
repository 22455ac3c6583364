// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
	"github.com/canonical/rbac-service/internal/tracing"
)

func newMockClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewDBClientFromDB(conn, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()), mock
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM role_permissions").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := client.Statement(ctx).Delete("role_permissions").Where("role_id = ?", "role-1").ExecContext(ctx)
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	client, mock := newMockClient(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM role_permissions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := client.Statement(ctx).Delete("role_permissions").Where("role_id = ?", "role-1").ExecContext(ctx); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxWithoutStatementsSkipsTransaction(t *testing.T) {
	client, mock := newMockClient(t)

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxNestedJoinsOuterTransaction(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO role_permissions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM role_permissions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := client.WithTx(context.Background(), func(outer context.Context) error {
		if _, err := client.Statement(outer).Insert("role_permissions").Columns("role_id", "permission_id").Values("role-1", "perm-1").ExecContext(outer); err != nil {
			return err
		}

		return client.WithTx(outer, func(inner context.Context) error {
			_, err := client.Statement(inner).Delete("role_permissions").Where("role_id = ?", "role-1").ExecContext(inner)
			return err
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		expectTx   bool
		expectDone func(sqlmock.Sqlmock)
		wantStatus int
	}{
		{
			name:     "read only request runs without transaction",
			method:   http.MethodGet,
			status:   http.StatusOK,
			expectTx: false,
		},
		{
			name:     "successful write commits",
			method:   http.MethodPut,
			status:   http.StatusOK,
			expectTx: true,
			expectDone: func(m sqlmock.Sqlmock) {
				m.ExpectCommit()
			},
		},
		{
			name:     "failed write rolls back",
			method:   http.MethodPut,
			status:   http.StatusForbidden,
			expectTx: true,
			expectDone: func(m sqlmock.Sqlmock) {
				m.ExpectRollback()
			},
		},
		{
			name:     "failed commit replaces the buffered response",
			method:   http.MethodPut,
			status:   http.StatusOK,
			expectTx: true,
			expectDone: func(m sqlmock.Sqlmock) {
				m.ExpectCommit().WillReturnError(errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client, mock := newMockClient(t)

			if test.expectTx {
				mock.ExpectBegin()
			}
			mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 1))
			if test.expectDone != nil {
				test.expectDone(mock)
			}

			handler := TransactionMiddleware(client, logging.NewNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := r.Context()
				_, err := client.Statement(ctx).Update("users").Set("is_super_admin", false).Where("id = ?", "user-1").ExecContext(ctx)
				require.NoError(t, err)
				w.WriteHeader(test.status)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(test.method, "/api/v0/accounts/acc-1/memberships/m-1/roles", nil))

			want := test.status
			if test.wantStatus != 0 {
				want = test.wantStatus
			}

			assert.Equal(t, want, rr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
