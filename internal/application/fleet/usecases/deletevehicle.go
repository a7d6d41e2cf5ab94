package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/expense"
	"autopark/internal/domain/fleet"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type DeleteVehicleCommand struct {
	LicensePlate string
}

// DeleteVehicleUseCase removes a vehicle and its maintenance history in one
// transaction. The maintenance records go first so the cascade is explicit
// even when the storage engine enforces the foreign key itself.
type DeleteVehicleUseCase struct {
	vehicleRepo     fleet.VehicleRepository
	maintenanceRepo expense.MaintenanceRepository
	txManager       TransactionManager
	logger          logger.Interface
}

func NewDeleteVehicleUseCase(
	vehicleRepo fleet.VehicleRepository,
	maintenanceRepo expense.MaintenanceRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteVehicleUseCase {
	return &DeleteVehicleUseCase{
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *DeleteVehicleUseCase) Execute(ctx context.Context, cmd DeleteVehicleCommand) error {
	plate := fleet.NormalizePlate(cmd.LicensePlate)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		vehicle, err := uc.vehicleRepo.FindByPlateForUpdate(txCtx, plate)
		if err != nil {
			return fmt.Errorf("failed to look up vehicle: %w", err)
		}
		if vehicle == nil {
			return errors.NewNotFoundError("vehicle not found", plate)
		}

		if err := uc.maintenanceRepo.DeleteByVehicleID(txCtx, vehicle.ID()); err != nil {
			return fmt.Errorf("failed to delete maintenance records: %w", err)
		}
		if err := uc.vehicleRepo.Delete(txCtx, vehicle.ID()); err != nil {
			return fmt.Errorf("failed to delete vehicle: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("vehicle deletion failed", "license_plate", plate, "error", err)
		return err
	}

	uc.logger.Infow("vehicle deleted", "license_plate", plate)
	return nil
}
