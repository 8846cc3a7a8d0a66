// Package seedtest opens throwaway SQLite stores loaded with the reference
// fixtures, for repository and service tests.
package seedtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"classicmodels/internal/infrastructure/persistence/models"
	"classicmodels/internal/infrastructure/persistence/seeds"
	"classicmodels/internal/shared/logger"
)

// NewEmptyDB returns an in-memory store with the schema but no rows.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// NewDB returns an in-memory store loaded with the reference fixtures.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewEmptyDB(t)
	seeder := seeds.NewSeeder(db, logger.NewNopLogger())
	require.NoError(t, seeder.SeedFixtures(context.Background()))
	return db
}
