package db

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestConnect_EmptyURL(t *testing.T) {
	_, err := Connect("", 5)
	assert.EqualError(t, err, "database URL cannot be empty")
}

func TestOpenGorm_SQLiteInMemory(t *testing.T) {
	gdb, err := OpenGorm("sqlite", ":memory:", 10, quietLogger())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpenGorm_SQLiteEnforcesForeignKeys(t *testing.T) {
	gdb, err := OpenGorm("sqlite", ":memory:", 1, quietLogger())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var enabled int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{":memory:", ":memory:?_foreign_keys=on"},
		{"catalog.db", "catalog.db?_foreign_keys=on"},
		{"file:catalog.db?cache=shared", "file:catalog.db?cache=shared&_foreign_keys=on"},
		{"catalog.db?_fk=1", "catalog.db?_fk=1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SQLiteDSN(tt.dsn), tt.dsn)
	}
}

func TestOpenGorm_UnsupportedDriver(t *testing.T) {
	_, err := OpenGorm("mysql", "root@/catalog", 1, quietLogger())
	assert.ErrorContains(t, err, "unsupported gorm driver")
}

func TestSchemaIsEmbedded(t *testing.T) {
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS categories")
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS products")
}
