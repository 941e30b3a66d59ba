package identifierstore_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/customerrepo"
	"atelier/internal/adapters/out/postgres/identifierstore"
	"atelier/internal/adapters/out/postgres/joborderrepo"
	"atelier/internal/adapters/out/postgres/materialrepo"
	"atelier/internal/adapters/out/postgres/receiptrepo"
	"atelier/internal/adapters/out/postgres/testdb"
	"atelier/internal/core/domain/model/identifier"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNextValue_StartsAtOneOnEmptyTables(t *testing.T) {
	ctx := context.Background()
	store := identifierstore.NewGormIdentifierStore(testdb.SQLite(t))

	for _, kind := range []identifier.Kind{identifier.CustomerCode, identifier.OrderNumber, identifier.ReceiptNumber} {
		first, err := store.NextValue(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, int64(1), first, kind)

		second, err := store.NextValue(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, int64(2), second, kind)
	}
}

func TestNextValue_SeedsFromLegacyRows(t *testing.T) {
	ctx := context.Background()
	db := testdb.SQLite(t)

	for _, code := range []string{"7", "WALKIN", "42", "0013"} {
		require.NoError(t, db.Create(&customerrepo.CustomerDTO{CustomerCode: code, Name: "n", Phone: "p", IsActive: true}).Error)
	}
	for _, number := range []string{"JO-0001", "JO-0002", "JO-0003"} {
		require.NoError(t, db.Create(&joborderrepo.JobOrderDTO{
			JobOrderNumber: number, CustomerID: 1, Status: "pending", PaymentMethod: "cash",
			DeliveryDate: time.Now().UTC(), IsActive: true,
		}).Error)
	}
	for _, number := range []string{"RCP001", "RCP20240115007"} {
		require.NoError(t, db.Create(&receiptrepo.ReceiptDTO{
			ReceiptNumber: number, ReceiptDate: time.Now().UTC(), Amount: decimal.NewFromInt(5), JobOrderID: 1, IsActive: true,
		}).Error)
	}

	store := identifierstore.NewGormIdentifierStore(db)

	code, err := store.NextValue(ctx, identifier.CustomerCode)
	require.NoError(t, err)
	assert.Equal(t, int64(43), code)

	number, err := store.NextValue(ctx, identifier.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(4), number)

	receipt, err := store.NextValue(ctx, identifier.ReceiptNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(8), receipt)
}

func TestNextValue_SeedIsTakenOnce(t *testing.T) {
	ctx := context.Background()
	db := testdb.SQLite(t)
	store := identifierstore.NewGormIdentifierStore(db)

	_, err := store.NextValue(ctx, identifier.OrderNumber)
	require.NoError(t, err)

	// Rows created after seeding do not move the counter.
	for _, number := range []string{"X-1", "X-2", "X-3"} {
		require.NoError(t, db.Create(&joborderrepo.JobOrderDTO{
			JobOrderNumber: number, CustomerID: 1, Status: "pending", PaymentMethod: "cash",
			DeliveryDate: time.Now().UTC(), IsActive: true,
		}).Error)
	}

	next, err := store.NextValue(ctx, identifier.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next)
}

func TestNextValue_RolledBackValueIsReused(t *testing.T) {
	ctx := context.Background()
	db := testdb.SQLite(t)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		_, err := identifierstore.NewGormIdentifierStore(tx).NextValue(ctx, identifier.ReceiptNumber)
		return err
	}))

	tx := db.Begin()
	reserved, err := identifierstore.NewGormIdentifierStore(tx).NextValue(ctx, identifier.ReceiptNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reserved)
	require.NoError(t, tx.Rollback().Error)

	again, err := identifierstore.NewGormIdentifierStore(db).NextValue(ctx, identifier.ReceiptNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again)
}

func TestNextValue_UnknownKind(t *testing.T) {
	_, err := identifierstore.NewGormIdentifierStore(testdb.SQLite(t)).NextValue(context.Background(), identifier.Kind("nope"))
	require.Error(t, err)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	db := testdb.SQLite(t)
	require.NoError(t, db.Create(&materialrepo.MaterialDTO{SKU: "12345", Name: "linen", IsActive: true}).Error)

	store := identifierstore.NewGormIdentifierStore(db)

	taken, err := store.Exists(ctx, identifier.MaterialSKU, "12345")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = store.Exists(ctx, identifier.MaterialSKU, "54321")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = store.Exists(ctx, identifier.SaleNumber, "SALE-000001")
	require.NoError(t, err)
	assert.False(t, taken)
}
