package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureVisitorsTableIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS visitors").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS visitors").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureVisitorsTable(db, DialectPostgres))
	require.NoError(t, EnsureVisitorsTable(db, DialectPostgres))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureVisitorsTableRejectsUnknownDialect(t *testing.T) {
	db, _ := newMockDB(t)

	err := EnsureVisitorsTable(db, Dialect("oracle"))
	assert.Error(t, err)
}

func TestEnsureVisitorsTableWrapsQueryFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS visitors").
		WillReturnError(errors.New("permission denied"))

	err := EnsureVisitorsTable(db, DialectMySQL)
	assert.ErrorIs(t, err, ErrQueryFailed)
}
