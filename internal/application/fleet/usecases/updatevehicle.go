package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/fleet"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type UpdateVehicleCommand struct {
	LicensePlate  string
	Name          *string
	PurchasePrice *float64
}

// UpdateVehicleUseCase corrects a vehicle's display name or purchase price.
type UpdateVehicleUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewUpdateVehicleUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, cmd UpdateVehicleCommand) (*VehicleResult, error) {
	if cmd.Name == nil && cmd.PurchasePrice == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	plate := fleet.NormalizePlate(cmd.LicensePlate)
	vehicle, err := uc.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, errors.NewNotFoundError("vehicle not found", plate)
	}

	if cmd.Name != nil {
		if err := vehicle.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.PurchasePrice != nil {
		if err := vehicle.SetPurchasePrice(*cmd.PurchasePrice); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		uc.logger.Errorw("failed to update vehicle", "license_plate", plate, "error", err)
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	uc.logger.Infow("vehicle updated", "vehicle_id", vehicle.ID(), "license_plate", plate)
	return newVehicleResult(vehicle), nil
}
