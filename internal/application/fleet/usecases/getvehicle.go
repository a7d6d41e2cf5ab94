package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/fleet"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type GetVehicleQuery struct {
	LicensePlate string
}

type GetVehicleUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewGetVehicleUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *GetVehicleUseCase {
	return &GetVehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *GetVehicleUseCase) Execute(ctx context.Context, query GetVehicleQuery) (*VehicleResult, error) {
	plate := fleet.NormalizePlate(query.LicensePlate)
	vehicle, err := uc.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, errors.NewNotFoundError("vehicle not found", plate)
	}
	return newVehicleResult(vehicle), nil
}
