// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"student-api/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewDB returns a SQLite database migrated from the gorm models.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewEmptyDB(t)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// NewEmptyDB returns a schema-less SQLite database living in the test's temp dir, with
// foreign keys enforced. Driver errors are translated to gorm's sentinels so that
// database.Classify can recognise constraint violations.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "students.db") + "?_pragma=foreign_keys(1)"
	cfg := database.GormConfig(zap.NewNop())
	cfg.TranslateError = true

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
