// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/database/database"
	"github.com/Tolex081/provernaire-backend/internal/database/migrate"
	"github.com/Tolex081/provernaire-backend/internal/database/pool"
)

// New returns a fresh in-memory database with the full schema applied.
// The pool is limited to one connection so that every query sees the same
// in-memory database.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(zap.NewNop().Sugar()))
	require.NoError(t, err)
	require.NoError(t, pool.SetupConnectionPool(db, pool.SingleConnPoolConfig()))
	require.NoError(t, migrate.AutoMigrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
