package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openSQLite(t *testing.T) *db.DB {
	t.Helper()
	sqldb, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "calpro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	sqldb := openSQLite(t)

	require.NoError(t, db.ApplyMigrations(sqldb))
	require.NoError(t, db.ApplyMigrations(sqldb))

	var count int
	require.NoError(t, sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 3, count)

	version, err := db.SchemaVersion(sqldb)
	require.NoError(t, err)
	assert.Equal(t, 3, version)

	for _, table := range []string{"users", "foods", "exercises", "weights", "app_config"} {
		var n int
		require.NoError(t, sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n))
		assert.Equal(t, 1, n, "table %s", table)
	}
}

func TestUserNameUniqueIgnoresCase(t *testing.T) {
	sqldb := openSQLite(t)
	require.NoError(t, db.ApplyMigrations(sqldb))

	_, err := sqldb.Exec(`INSERT INTO users(name) VALUES(?)`, "Alice")
	require.NoError(t, err)
	_, err = sqldb.Exec(`INSERT INTO users(name) VALUES(?)`, "ALICE")
	require.Error(t, err)
}

func TestSchemaVersionBeforeMigrations(t *testing.T) {
	sqldb := openSQLite(t)
	_, err := sqldb.Exec(`CREATE TABLE schema_migrations (version INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)

	version, err := db.SchemaVersion(sqldb)
	require.NoError(t, err)
	assert.Zero(t, version)
}

func TestPostgresMigrations(t *testing.T) {
	dsn := os.Getenv("CALPRO_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CALPRO_TEST_POSTGRES_DSN not set")
	}
	sqldb, err := db.Open(db.Postgres, dsn)
	require.NoError(t, err)
	defer sqldb.Close()

	require.NoError(t, db.ApplyMigrations(sqldb))
	require.NoError(t, db.ApplyMigrations(sqldb))

	version, err := db.SchemaVersion(sqldb)
	require.NoError(t, err)
	assert.Equal(t, 3, version)
}
