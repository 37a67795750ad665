// Package tutil holds helpers shared by the package tests.
package tutil

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rollinitiative/rollinit/pkg/ridb"
	"github.com/rollinitiative/rollinit/pkg/ridb/seed"
)

// IsIntegrationTest reports whether RI_TEST=integration, which enables the tests that
// need a MySQL or Postgres server.
func IsIntegrationTest() bool {
	testType := os.Getenv("RI_TEST")
	return strings.ToLower(testType) == "integration"
}

// NewTestDB returns a private in-memory sqlite database with the schema migrated and
// the default catalog loaded.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewEmptyTestDB(t)
	_, err := seed.LoadDefault(db)
	require.NoError(t, err)

	return db
}

// NewEmptyTestDB is NewTestDB without the catalog.
func NewEmptyTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := ridb.OpenSqlite(ridb.NewSqliteInMemoryDSN())
	require.NoError(t, err)
	require.NoError(t, ridb.RunMigrations(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
