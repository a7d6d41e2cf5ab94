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

type ListMaintenanceQuery struct {
	// LicensePlate limits the listing to one vehicle when non-empty.
	LicensePlate string
}

type MaintenanceItem struct {
	RecordID     uint
	VehicleID    uint
	VehicleName  string
	LicensePlate string
	Amount       float64
	Description  string
	RecordedAt   time.Time
}

type ListMaintenanceResult struct {
	Records     []*MaintenanceItem
	Total       int
	TotalAmount float64
}

type ListMaintenanceUseCase struct {
	maintenanceRepo expense.MaintenanceRepository
	vehicleRepo     fleet.VehicleRepository
	logger          logger.Interface
}

func NewListMaintenanceUseCase(
	maintenanceRepo expense.MaintenanceRepository,
	vehicleRepo fleet.VehicleRepository,
	logger logger.Interface,
) *ListMaintenanceUseCase {
	return &ListMaintenanceUseCase{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		logger:          logger,
	}
}

func (uc *ListMaintenanceUseCase) Execute(ctx context.Context, query ListMaintenanceQuery) (*ListMaintenanceResult, error) {
	if query.LicensePlate != "" {
		return uc.listForVehicle(ctx, query.LicensePlate)
	}

	items, err := uc.maintenanceRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	result := &ListMaintenanceResult{Records: make([]*MaintenanceItem, 0, len(items))}
	for _, item := range items {
		result.Records = append(result.Records, &MaintenanceItem{
			RecordID:     item.Record.ID(),
			VehicleID:    item.Record.VehicleID(),
			VehicleName:  item.VehicleName,
			LicensePlate: item.LicensePlate,
			Amount:       item.Record.Amount(),
			Description:  item.Record.Description(),
			RecordedAt:   item.Record.RecordedAt(),
		})
		result.TotalAmount += item.Record.Amount()
	}
	result.Total = len(result.Records)
	return result, nil
}

func (uc *ListMaintenanceUseCase) listForVehicle(ctx context.Context, rawPlate string) (*ListMaintenanceResult, error) {
	plate := fleet.NormalizePlate(rawPlate)
	vehicle, err := uc.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, errors.NewNotFoundError("vehicle not found", plate)
	}

	records, err := uc.maintenanceRepo.FindByVehicleID(ctx, vehicle.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	result := &ListMaintenanceResult{Records: make([]*MaintenanceItem, 0, len(records))}
	for _, record := range records {
		result.Records = append(result.Records, &MaintenanceItem{
			RecordID:     record.ID(),
			VehicleID:    record.VehicleID(),
			VehicleName:  vehicle.Name(),
			LicensePlate: plate,
			Amount:       record.Amount(),
			Description:  record.Description(),
			RecordedAt:   record.RecordedAt(),
		})
		result.TotalAmount += record.Amount()
	}
	result.Total = len(result.Records)
	return result, nil
}
