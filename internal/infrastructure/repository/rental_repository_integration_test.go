package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopark/internal/domain/rental"
)

func createTestRental(t *testing.T, server, transport, plate string, price float64) *rental.Rental {
	rec, err := rental.NewRental(server, "Ivan_Petrov", transport, plate, price, "2 дня", "Oleg_Sidorov")
	require.NoError(t, err)
	return rec
}

func TestRentalRepository_Create(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRentalRepository(gdb)
	ctx := context.Background()

	rec := createTestRental(t, "Rodina RP", "BMW M5", "ab123cd", 1500)
	err := repo.Create(ctx, rec)
	require.NoError(t, err)
	assert.NotZero(t, rec.ID())

	found, err := repo.FindByPlate(ctx, "AB123CD")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Rodina RP", found[0].Server())
	assert.Equal(t, 1500.0, found[0].Price())
	assert.Equal(t, "AB123CD", found[0].LicensePlate())
}

func TestRentalRepository_CountAndSum(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRentalRepository(gdb)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		sum, err := repo.SumPrices(ctx)
		require.NoError(t, err)
		assert.Zero(t, sum)
	})

	require.NoError(t, repo.Create(ctx, createTestRental(t, "S1", "T1", "X1", 100)))
	require.NoError(t, repo.Create(ctx, createTestRental(t, "S1", "T1", "X1", 150)))
	require.NoError(t, repo.Create(ctx, createTestRental(t, "S2", "T2", "Y2", 200)))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	sum, err := repo.SumPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 450.0, sum)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRentalRepository_GroupStats(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRentalRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestRental(t, "Rodina RP", "BMW M5", "X1", 300)))
	require.NoError(t, repo.Create(ctx, createTestRental(t, "Rodina RP", "Sedan", "Y2", 100)))
	require.NoError(t, repo.Create(ctx, createTestRental(t, "RedCounty", "Sedan", "Z3", 700)))

	t.Run("by server ordered by income", func(t *testing.T) {
		stats, err := repo.StatsByServer(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, "RedCounty", stats[0].Key)
		assert.Equal(t, int64(1), stats[0].Rentals)
		assert.Equal(t, 700.0, stats[0].Income)

		assert.Equal(t, "Rodina RP", stats[1].Key)
		assert.Equal(t, int64(2), stats[1].Rentals)
		assert.Equal(t, 400.0, stats[1].Income)
	})

	t.Run("by transport ordered by income", func(t *testing.T) {
		stats, err := repo.StatsByTransport(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, "Sedan", stats[0].Key)
		assert.Equal(t, 800.0, stats[0].Income)
		assert.Equal(t, "BMW M5", stats[1].Key)
		assert.Equal(t, 300.0, stats[1].Income)
	})
}
