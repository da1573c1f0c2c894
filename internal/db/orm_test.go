package db_test

import (
	"context"
	"testing"

	"charter-ops/hangar/internal/config"
	"charter-ops/hangar/internal/db"
	"charter-ops/hangar/internal/db/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := db.Open(config.DBConfig{Driver: "mysql", DSN: "x"})
	assert.Error(t, err)
}

func TestOpen_MigratesTables(t *testing.T) {
	database := dbtest.Open(t)

	for _, table := range []string{"accounts", "planes", "pilots", "trips"} {
		assert.True(t, database.ORM.Migrator().HasTable(table), table)
	}
}

func TestNewSQLX_SharesPool(t *testing.T) {
	database := dbtest.Open(t)
	require.NotNil(t, database.SQL)

	ctx := context.Background()
	require.NoError(t, database.SQL.PingContext(ctx))

	var count int
	query := database.SQL.Rebind("SELECT COUNT(*) FROM accounts WHERE email = ?")
	require.NoError(t, database.SQL.GetContext(ctx, &count, query, "nobody@example.com"))
	assert.Equal(t, 0, count)
}
