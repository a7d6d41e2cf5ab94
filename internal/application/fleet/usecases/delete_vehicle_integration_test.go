package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"autopark/internal/domain/expense"
	"autopark/internal/domain/fleet"
	"autopark/internal/infrastructure/persistence/models"
	"autopark/internal/infrastructure/repository"
	"autopark/internal/shared/db"
	apperrors "autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupFleetDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(&models.VehicleModel{}, &models.MaintenanceModel{})
	require.NoError(t, err)

	return gdb
}

func TestDeleteVehicleUseCase_CascadesMaintenance(t *testing.T) {
	gdb := setupFleetDB(t)
	vehicleRepo := repository.NewVehicleRepository(gdb)
	maintenanceRepo := repository.NewMaintenanceRepository(gdb)
	txManager := db.NewTransactionManager(gdb)
	ctx := context.Background()

	vehicle, err := fleet.NewVehicle("BMW M5", "DEL1", 10000)
	require.NoError(t, err)
	require.NoError(t, vehicleRepo.Create(ctx, vehicle))

	for _, amount := range []float64{100, 200, 300} {
		record, err := expense.NewMaintenanceRecord(vehicle.ID(), amount, "service")
		require.NoError(t, err)
		require.NoError(t, maintenanceRepo.Create(ctx, record))
	}

	uc := NewDeleteVehicleUseCase(vehicleRepo, maintenanceRepo, txManager, noopLogger{})
	require.NoError(t, uc.Execute(ctx, DeleteVehicleCommand{LicensePlate: "del1"}))

	found, err := vehicleRepo.FindByPlate(ctx, "DEL1")
	require.NoError(t, err)
	assert.Nil(t, found)

	records, err := maintenanceRepo.FindByVehicleID(ctx, vehicle.ID())
	require.NoError(t, err)
	assert.Empty(t, records)

	total, err := maintenanceRepo.SumAmounts(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDeleteVehicleUseCase_MissingVehicle(t *testing.T) {
	gdb := setupFleetDB(t)
	uc := NewDeleteVehicleUseCase(
		repository.NewVehicleRepository(gdb),
		repository.NewMaintenanceRepository(gdb),
		db.NewTransactionManager(gdb),
		noopLogger{},
	)

	err := uc.Execute(context.Background(), DeleteVehicleCommand{LicensePlate: "GHOST"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRegisterVehicleUseCase_DuplicatePlateConflicts(t *testing.T) {
	gdb := setupFleetDB(t)
	vehicleRepo := repository.NewVehicleRepository(gdb)
	uc := NewRegisterVehicleUseCase(vehicleRepo, noopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, RegisterVehicleCommand{Name: "BMW M5", LicensePlate: "AB123CD", PurchasePrice: 100})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, RegisterVehicleCommand{Name: "Audi A6", LicensePlate: "ab123cd", PurchasePrice: 200})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestSellVehicleUseCase_SetsPriceAndDateTogether(t *testing.T) {
	gdb := setupFleetDB(t)
	vehicleRepo := repository.NewVehicleRepository(gdb)
	uc := NewSellVehicleUseCase(vehicleRepo, noopLogger{})
	ctx := context.Background()

	vehicle, err := fleet.NewVehicle("BMW M5", "SELL1", 10000)
	require.NoError(t, err)
	require.NoError(t, vehicleRepo.Create(ctx, vehicle))

	result, err := uc.Execute(ctx, SellVehicleCommand{LicensePlate: "sell1", SalePrice: 12000})
	require.NoError(t, err)
	require.NotNil(t, result.SalePrice)
	assert.Equal(t, 12000.0, *result.SalePrice)
	require.NotNil(t, result.SaleDate)
	assert.Equal(t, "sold", result.Status)

	t.Run("second sale is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, SellVehicleCommand{LicensePlate: "SELL1", SalePrice: 13000})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}
