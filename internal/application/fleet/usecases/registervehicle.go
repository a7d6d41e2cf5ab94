package usecases

import (
	"context"
	"fmt"
	"time"

	"autopark/internal/domain/fleet"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type RegisterVehicleCommand struct {
	Name          string
	LicensePlate  string
	PurchasePrice float64
}

type RegisterVehicleResult struct {
	VehicleID     uint
	LicensePlate  string
	Name          string
	Status        string
	PurchasePrice float64
	CreatedAt     time.Time
}

// RegisterVehicleUseCase adds a vehicle through the administrative path.
// Unlike ingestion-discovered vehicles it carries a real purchase price and
// starts with zero aggregates.
type RegisterVehicleUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewRegisterVehicleUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *RegisterVehicleUseCase {
	return &RegisterVehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *RegisterVehicleUseCase) Execute(ctx context.Context, cmd RegisterVehicleCommand) (*RegisterVehicleResult, error) {
	uc.logger.Infow("registering vehicle", "license_plate", cmd.LicensePlate, "name", cmd.Name)

	plate := fleet.NormalizePlate(cmd.LicensePlate)
	existing, err := uc.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing vehicle: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("vehicle with plate already exists", "license_plate", plate)
		return nil, errors.NewConflictError("vehicle with this license plate already exists", plate)
	}

	vehicle, err := fleet.NewVehicle(cmd.Name, cmd.LicensePlate, cmd.PurchasePrice)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.vehicleRepo.Create(ctx, vehicle); err != nil {
		uc.logger.Errorw("failed to persist vehicle", "license_plate", plate, "error", err)
		return nil, fmt.Errorf("failed to save vehicle: %w", err)
	}

	uc.logger.Infow("vehicle registered", "vehicle_id", vehicle.ID(), "license_plate", plate)

	return &RegisterVehicleResult{
		VehicleID:     vehicle.ID(),
		LicensePlate:  vehicle.LicensePlate(),
		Name:          vehicle.Name(),
		Status:        vehicle.Status().String(),
		PurchasePrice: vehicle.PurchasePrice(),
		CreatedAt:     vehicle.CreatedAt(),
	}, nil
}
