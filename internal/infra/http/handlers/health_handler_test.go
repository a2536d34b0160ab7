package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestHealthReportsHealthyDatabase(t *testing.T) {
	db, mock := newHealthDB(t)
	mock.ExpectPing()

	rec := httptest.NewRecorder()
	NewHealthHandler(db).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["database"])
}

func TestHealthDegradedWhenDatabaseUnreachable(t *testing.T) {
	db, mock := newHealthDB(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	rec := httptest.NewRecorder()
	NewHealthHandler(db).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Contains(t, resp.Dependencies["database"], "unhealthy")
}

func TestHealthWithoutConfiguredDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(nil).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}
