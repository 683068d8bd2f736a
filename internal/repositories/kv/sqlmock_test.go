package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock
}

func TestMock_GetWrapsDriverError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT\s+value\s+FROM\s+kv_store\s+WHERE\s+key\s*=\s*\?$`).
		WithArgs("customers").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background(), "customers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get kv[customers]: disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMock_SetUpsertsAndWrapsError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := `(?s)INSERT\s+INTO\s+kv_store\s*\(key,\s*value\)\s*VALUES\s*\(\?,\s*\?\)\s*ON\s+CONFLICT\(key\)\s+DO\s+UPDATE`

	mock.ExpectExec(q).
		WithArgs("language", []byte("hi")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).
		WithArgs("language", []byte("en")).
		WillReturnError(sql.ErrConnDone)

	require.NoError(t, repo.Set(context.Background(), "language", []byte("hi")))
	err := repo.Set(context.Background(), "language", []byte("en"))
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMock_DeleteWrapsError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+kv_store\s+WHERE\s+key`).WithArgs("currentUser").
		WillReturnError(errors.New("locked"))

	assert.ErrorContains(t, repo.Delete(context.Background(), "currentUser"), "failed to delete kv[currentUser]")
	require.NoError(t, mock.ExpectationsWereMet())
}
