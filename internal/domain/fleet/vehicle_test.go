package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "autopark/internal/domain/fleet/valueobjects"
)

func TestNewVehicle(t *testing.T) {
	t.Run("creates available vehicle with normalized plate", func(t *testing.T) {
		v, err := NewVehicle("BMW M5", "ab123cd", 50000)
		require.NoError(t, err)

		assert.Equal(t, "AB123CD", v.LicensePlate())
		assert.Equal(t, "BMW M5", v.Name())
		assert.Equal(t, vo.StatusAvailable, v.Status())
		assert.Equal(t, 50000.0, v.PurchasePrice())
		assert.Zero(t, v.TotalIncome())
		assert.Zero(t, v.TotalRentals())
		assert.Nil(t, v.SalePrice())
		assert.Nil(t, v.SaleDate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewVehicle("", "AB123CD", 0)
		assert.Error(t, err)
	})

	t.Run("rejects invalid plate", func(t *testing.T) {
		_, err := NewVehicle("BMW M5", "AB 123!", 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative purchase price", func(t *testing.T) {
		_, err := NewVehicle("BMW M5", "AB123CD", -1)
		assert.Error(t, err)
	})
}

func TestNewDiscoveredVehicle(t *testing.T) {
	t.Run("acquisition price is zero", func(t *testing.T) {
		v, err := NewDiscoveredVehicle("Sedan", "abc123")
		require.NoError(t, err)

		assert.Equal(t, "ABC123", v.LicensePlate())
		assert.Equal(t, "Sedan", v.Name())
		assert.Zero(t, v.PurchasePrice())
	})

	t.Run("falls back to plate as name", func(t *testing.T) {
		v, err := NewDiscoveredVehicle("", "abc123")
		require.NoError(t, err)
		assert.Equal(t, "ABC123", v.Name())
	})
}

func TestVehicle_RecordRental(t *testing.T) {
	v, err := NewVehicle("Sedan", "X1", 0)
	require.NoError(t, err)

	require.NoError(t, v.RecordRental(100))
	require.NoError(t, v.RecordRental(150))

	assert.Equal(t, 250.0, v.TotalIncome())
	assert.Equal(t, 2, v.TotalRentals())
	assert.Equal(t, vo.StatusRented, v.Status())

	assert.Error(t, v.RecordRental(-1))
	assert.Equal(t, 250.0, v.TotalIncome())
	assert.Equal(t, 2, v.TotalRentals())
}

func TestVehicle_MarkSold(t *testing.T) {
	v, err := NewVehicle("Sedan", "X1", 10000)
	require.NoError(t, err)

	require.NoError(t, v.MarkSold(12000))

	assert.Equal(t, vo.StatusSold, v.Status())
	require.NotNil(t, v.SalePrice())
	assert.Equal(t, 12000.0, *v.SalePrice())
	require.NotNil(t, v.SaleDate())

	t.Run("selling twice fails", func(t *testing.T) {
		assert.Error(t, v.MarkSold(13000))
		assert.Equal(t, 12000.0, *v.SalePrice())
	})

	t.Run("negative sale price fails", func(t *testing.T) {
		v2, err := NewVehicle("Sedan", "X2", 0)
		require.NoError(t, err)
		assert.Error(t, v2.MarkSold(-1))
		assert.Nil(t, v2.SalePrice())
	})
}

func TestVehicle_ChangeStatus(t *testing.T) {
	v, err := NewVehicle("Sedan", "X1", 0)
	require.NoError(t, err)

	require.NoError(t, v.ChangeStatus(vo.StatusMaintenance))
	assert.Equal(t, vo.StatusMaintenance, v.Status())

	assert.Error(t, v.ChangeStatus(vo.Status("scrapped")))
	assert.Equal(t, vo.StatusMaintenance, v.Status())
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizePlate("abc123"))
	assert.Equal(t, "ABC123", NormalizePlate("  ABC123  "))
	assert.Equal(t, NormalizePlate("abc123"), NormalizePlate(NormalizePlate("abc123")))
}

func TestValidatePlate(t *testing.T) {
	assert.NoError(t, ValidatePlate("AB123CD"))
	assert.NoError(t, ValidatePlate("x1"))
	assert.Error(t, ValidatePlate(""))
	assert.Error(t, ValidatePlate("AB 123"))
	assert.Error(t, ValidatePlate("AB-123"))
}
