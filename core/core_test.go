package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"securityscan.com/securityscan/model"
)

// newTestDB opens a private in-memory database. One connection only, so every
// query and transaction shares the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&model.Form{},
		&model.ScanRecord{},
		&model.Counter{},
		&model.Department{},
		&model.DeptUser{},
	)
	require.NoError(t, err)

	return db
}
