package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/fleet"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type SellVehicleCommand struct {
	LicensePlate string
	SalePrice    float64
}

// SellVehicleUseCase records a sale: the sold status, sale price and sale
// date are written in one update.
type SellVehicleUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewSellVehicleUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *SellVehicleUseCase {
	return &SellVehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *SellVehicleUseCase) Execute(ctx context.Context, cmd SellVehicleCommand) (*VehicleResult, error) {
	plate := fleet.NormalizePlate(cmd.LicensePlate)
	vehicle, err := uc.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, errors.NewNotFoundError("vehicle not found", plate)
	}

	if err := vehicle.MarkSold(cmd.SalePrice); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		uc.logger.Errorw("failed to record vehicle sale", "license_plate", plate, "error", err)
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	uc.logger.Infow("vehicle sold", "license_plate", plate, "sale_price", cmd.SalePrice)
	return newVehicleResult(vehicle), nil
}
