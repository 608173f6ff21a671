package db

import (
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec("CREATE TABLE t (id INTEGER)")
	assert.NoError(t, err)
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "catalog.db"))
	assert.Error(t, err)
}

func TestGetPanicsBeforeInit(t *testing.T) {
	SetForTesting(nil)
	assert.False(t, Initialized())
	assert.Panics(t, func() { Get() })
}

func TestSetForTesting(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer SetForTesting(nil)

	SetForTesting(mockDB)
	assert.True(t, Initialized())
	assert.Same(t, mockDB, Get())

	mock.ExpectClose()
	require.NoError(t, Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
