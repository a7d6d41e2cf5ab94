package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopark/internal/domain/expense"
)

func TestMaintenanceRepository(t *testing.T) {
	gdb := setupTestDB(t)
	vehicleRepo := NewVehicleRepository(gdb)
	repo := NewMaintenanceRepository(gdb)
	ctx := context.Background()

	v := createTestVehicle(t, "BMW M5", "M1", 0)
	require.NoError(t, vehicleRepo.Create(ctx, v))

	rec1, err := expense.NewMaintenanceRecord(v.ID(), 300, "oil change")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, rec1))
	assert.NotZero(t, rec1.ID())

	rec2, err := expense.NewMaintenanceRecord(v.ID(), 700, "new tires")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, rec2))

	t.Run("find by vehicle", func(t *testing.T) {
		records, err := repo.FindByVehicleID(ctx, v.ID())
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("joined listing carries vehicle fields", func(t *testing.T) {
		items, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)

		for _, item := range items {
			assert.Equal(t, "BMW M5", item.VehicleName)
			assert.Equal(t, "M1", item.LicensePlate)
			assert.Equal(t, v.ID(), item.Record.VehicleID())
		}
	})

	t.Run("sum amounts", func(t *testing.T) {
		total, err := repo.SumAmounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, total)
	})

	t.Run("delete by vehicle removes the history", func(t *testing.T) {
		require.NoError(t, repo.DeleteByVehicleID(ctx, v.ID()))

		records, err := repo.FindByVehicleID(ctx, v.ID())
		require.NoError(t, err)
		assert.Empty(t, records)

		total, err := repo.SumAmounts(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestCostRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCostRepository(gdb)
	ctx := context.Background()

	t.Run("sums over empty ledgers are zero", func(t *testing.T) {
		for _, category := range []expense.CostCategory{expense.CostAdvertising, expense.CostMisc} {
			total, err := repo.SumByCategory(ctx, category)
			require.NoError(t, err)
			assert.Zero(t, total)
		}
	})

	ad, err := expense.NewCostRecord(expense.CostAdvertising, 250, "forum banner")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ad))

	misc1, err := expense.NewCostRecord(expense.CostMisc, 40, "parking fee")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, misc1))

	misc2, err := expense.NewCostRecord(expense.CostMisc, 60, "car wash")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, misc2))

	t.Run("categories accumulate independently", func(t *testing.T) {
		adTotal, err := repo.SumByCategory(ctx, expense.CostAdvertising)
		require.NoError(t, err)
		assert.Equal(t, 250.0, adTotal)

		miscTotal, err := repo.SumByCategory(ctx, expense.CostMisc)
		require.NoError(t, err)
		assert.Equal(t, 100.0, miscTotal)
	})

	t.Run("find by category", func(t *testing.T) {
		records, err := repo.FindByCategory(ctx, expense.CostMisc)
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, record := range records {
			assert.Equal(t, expense.CostMisc, record.Category())
		}
	})
}
