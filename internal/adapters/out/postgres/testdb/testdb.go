// Package testdb opens throwaway databases with the full schema for tests.
package testdb

import (
	"testing"

	"atelier/internal/adapters/out/postgres/customerrepo"
	"atelier/internal/adapters/out/postgres/identifierstore"
	"atelier/internal/adapters/out/postgres/joborderrepo"
	"atelier/internal/adapters/out/postgres/materialrepo"
	"atelier/internal/adapters/out/postgres/receiptrepo"
	"atelier/internal/adapters/out/postgres/salerepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&materialrepo.MaterialDTO{},
		&joborderrepo.JobOrderDTO{},
		&joborderrepo.JobOrderItemDTO{},
		&joborderrepo.JobOrderMeasurementDTO{},
		&receiptrepo.ReceiptDTO{},
		&salerepo.SaleDTO{},
		&identifierstore.SequenceDTO{},
	}
}

// SQLite opens a private in-memory database with every table migrated. A
// single connection is used so the schema is visible to every query; code
// under test must not query the pool while it holds a transaction.
func SQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}
