package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingableMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestTestConnectionRoundTripsAPing(t *testing.T) {
	db, mock := newPingableMockDB(t)

	mock.ExpectPing()

	require.NoError(t, TestConnection(db, DialectPostgres))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestConnectionFailureWrapsConnectionError(t *testing.T) {
	db, mock := newPingableMockDB(t)

	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))

	err := TestConnection(db, DialectMySQL)
	assert.ErrorIs(t, err, ErrConnectionFailed)
}
