package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/fleet"
	vo "autopark/internal/domain/fleet/valueobjects"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type ChangeVehicleStatusCommand struct {
	LicensePlate string
	Status       string
}

// ChangeVehicleStatusUseCase moves a vehicle to another lifecycle status.
// Selling goes through SellVehicleUseCase instead, which records the sale
// price and date together with the status change.
type ChangeVehicleStatusUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewChangeVehicleStatusUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *ChangeVehicleStatusUseCase {
	return &ChangeVehicleStatusUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *ChangeVehicleStatusUseCase) Execute(ctx context.Context, cmd ChangeVehicleStatusCommand) (*VehicleResult, error) {
	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if status == vo.StatusSold {
		return nil, errors.NewValidationError("use the sell operation to mark a vehicle sold")
	}

	plate := fleet.NormalizePlate(cmd.LicensePlate)
	vehicle, err := uc.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, errors.NewNotFoundError("vehicle not found", plate)
	}

	if err := vehicle.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		uc.logger.Errorw("failed to change vehicle status", "license_plate", plate, "error", err)
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	uc.logger.Infow("vehicle status changed", "license_plate", plate, "status", status.String())
	return newVehicleResult(vehicle), nil
}
