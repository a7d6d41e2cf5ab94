package usecases

import (
	"context"
	"fmt"
	"time"

	"autopark/internal/domain/expense"
	"autopark/internal/domain/fleet"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type AddMaintenanceCommand struct {
	LicensePlate string
	Amount       float64
	Description  string
}

type AddMaintenanceResult struct {
	RecordID     uint
	VehicleID    uint
	LicensePlate string
	Amount       float64
	Description  string
	RecordedAt   time.Time
}

// AddMaintenanceUseCase appends a maintenance expense to an existing
// vehicle. The vehicle is resolved by plate; a missing vehicle is a
// not-found failure, never an implicit create.
type AddMaintenanceUseCase struct {
	maintenanceRepo expense.MaintenanceRepository
	vehicleRepo     fleet.VehicleRepository
	logger          logger.Interface
}

func NewAddMaintenanceUseCase(
	maintenanceRepo expense.MaintenanceRepository,
	vehicleRepo fleet.VehicleRepository,
	logger logger.Interface,
) *AddMaintenanceUseCase {
	return &AddMaintenanceUseCase{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		logger:          logger,
	}
}

func (uc *AddMaintenanceUseCase) Execute(ctx context.Context, cmd AddMaintenanceCommand) (*AddMaintenanceResult, error) {
	plate := fleet.NormalizePlate(cmd.LicensePlate)
	vehicle, err := uc.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, errors.NewNotFoundError("vehicle not found", plate)
	}

	record, err := expense.NewMaintenanceRecord(vehicle.ID(), cmd.Amount, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.maintenanceRepo.Create(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist maintenance record", "license_plate", plate, "error", err)
		return nil, fmt.Errorf("failed to save maintenance record: %w", err)
	}

	uc.logger.Infow("maintenance recorded",
		"record_id", record.ID(),
		"license_plate", plate,
		"amount", cmd.Amount)

	return &AddMaintenanceResult{
		RecordID:     record.ID(),
		VehicleID:    vehicle.ID(),
		LicensePlate: plate,
		Amount:       record.Amount(),
		Description:  record.Description(),
		RecordedAt:   record.RecordedAt(),
	}, nil
}
