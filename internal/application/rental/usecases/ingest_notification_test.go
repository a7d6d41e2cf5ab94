package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopark/internal/domain/fleet"
	vo "autopark/internal/domain/fleet/valueobjects"
	"autopark/internal/domain/rental"
	apperrors "autopark/internal/shared/errors"
)

const notificationText = `Сервер: Rodina RP
Персонаж: Ivan_Petrov
Транспорт: BMW M5
Номер транспорта: abc123
Цена: $1500
Длительность: 2 дня
Арендатор: Oleg_Sidorov`

func TestIngestNotificationUseCase_CreatesVehicleWhenAbsent(t *testing.T) {
	var createdVehicle *fleet.Vehicle
	var updatedVehicle *fleet.Vehicle
	var appendedRental *rental.Rental

	vehicleRepo := &mockVehicleRepository{
		FindByPlateForUpdateFunc: func(ctx context.Context, plate string) (*fleet.Vehicle, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, v *fleet.Vehicle) error {
			v.SetID(7)
			createdVehicle = v
			return nil
		},
		UpdateFunc: func(ctx context.Context, v *fleet.Vehicle) error {
			updatedVehicle = v
			return nil
		},
	}
	rentalRepo := &mockRentalRepository{
		CreateFunc: func(ctx context.Context, r *rental.Rental) error {
			r.SetID(42)
			appendedRental = r
			return nil
		},
	}

	uc := NewIngestNotificationUseCase(rentalRepo, vehicleRepo, &mockTransactionManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), IngestNotificationCommand{Text: notificationText})

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.VehicleCreated)
	assert.Equal(t, "ABC123", result.LicensePlate)
	assert.Equal(t, 1500.0, result.Price)
	assert.Equal(t, uint(42), result.RentalID)
	assert.Equal(t, 1500.0, result.TotalIncome)
	assert.Equal(t, 1, result.TotalRentals)

	require.NotNil(t, createdVehicle)
	assert.Equal(t, "ABC123", createdVehicle.LicensePlate())
	assert.Equal(t, "BMW M5", createdVehicle.Name())
	assert.Zero(t, createdVehicle.PurchasePrice())

	require.NotNil(t, updatedVehicle)
	assert.Equal(t, vo.StatusRented, updatedVehicle.Status())

	require.NotNil(t, appendedRental)
	assert.Equal(t, "ABC123", appendedRental.LicensePlate())
	assert.Equal(t, "Rodina RP", appendedRental.Server())
}

func TestIngestNotificationUseCase_IncrementsExistingVehicle(t *testing.T) {
	existing, err := fleet.NewDiscoveredVehicle("BMW M5", "ABC123")
	require.NoError(t, err)
	existing.SetID(7)
	require.NoError(t, existing.RecordRental(100))

	created := false
	vehicleRepo := &mockVehicleRepository{
		FindByPlateForUpdateFunc: func(ctx context.Context, plate string) (*fleet.Vehicle, error) {
			assert.Equal(t, "ABC123", plate)
			return existing, nil
		},
		CreateFunc: func(ctx context.Context, v *fleet.Vehicle) error {
			created = true
			return nil
		},
	}

	uc := NewIngestNotificationUseCase(&mockRentalRepository{}, vehicleRepo, &mockTransactionManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), IngestNotificationCommand{Text: notificationText})

	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, result.VehicleCreated)
	assert.Equal(t, 1600.0, result.TotalIncome)
	assert.Equal(t, 2, result.TotalRentals)
}

func TestIngestNotificationUseCase_NormalizesPlateCase(t *testing.T) {
	// Plates "abc123" and "ABC123" must resolve to the same vehicle key.
	var lookedUp []string
	vehicleRepo := &mockVehicleRepository{
		FindByPlateForUpdateFunc: func(ctx context.Context, plate string) (*fleet.Vehicle, error) {
			lookedUp = append(lookedUp, plate)
			return nil, nil
		},
	}

	uc := NewIngestNotificationUseCase(&mockRentalRepository{}, vehicleRepo, &mockTransactionManager{}, &mockLogger{})

	lower := `Сервер: S
Персонаж: P
Транспорт: T
Номер: abc123
Цена: $100
Длительность: 1 день
Арендатор: R`
	upper := `Сервер: S
Персонаж: P
Транспорт: T
Номер: ABC123
Цена: $100
Длительность: 1 день
Арендатор: R`

	_, err := uc.Execute(context.Background(), IngestNotificationCommand{Text: lower})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), IngestNotificationCommand{Text: upper})
	require.NoError(t, err)

	require.Len(t, lookedUp, 2)
	assert.Equal(t, "ABC123", lookedUp[0])
	assert.Equal(t, "ABC123", lookedUp[1])
}

func TestIngestNotificationUseCase_RejectsNonRentalText(t *testing.T) {
	uc := NewIngestNotificationUseCase(&mockRentalRepository{}, &mockVehicleRepository{}, &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), IngestNotificationCommand{Text: "hello there"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestIngestNotificationUseCase_AppendFailureRollsBack(t *testing.T) {
	// The transaction manager surfaces the unit's error; nothing commits.
	rentalRepo := &mockRentalRepository{
		CreateFunc: func(ctx context.Context, r *rental.Rental) error {
			return errors.New("append failed")
		},
	}

	rolledBack := false
	txManager := &mockTransactionManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			if err := fn(ctx); err != nil {
				rolledBack = true
				return err
			}
			return nil
		},
	}

	uc := NewIngestNotificationUseCase(rentalRepo, &mockVehicleRepository{}, txManager, &mockLogger{})
	result, err := uc.Execute(context.Background(), IngestNotificationCommand{Text: notificationText})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, rolledBack)
}
