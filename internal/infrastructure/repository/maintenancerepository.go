package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"autopark/internal/domain/expense"
	"autopark/internal/infrastructure/persistence/mappers"
	"autopark/internal/infrastructure/persistence/models"
	"autopark/internal/shared/constants"
	"autopark/internal/shared/db"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, record *expense.MaintenanceRecord) error {
	model := mappers.MaintenanceToModel(record)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}

	record.SetID(model.ID)

	return nil
}

func (r *MaintenanceRepository) FindByVehicleID(ctx context.Context, vehicleID uint) ([]*expense.MaintenanceRecord, error) {
	var recordModels []models.MaintenanceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("vehicle_id = ?", vehicleID).
		Order("recorded_at DESC, id DESC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance by vehicle: %w", err)
	}

	records := make([]*expense.MaintenanceRecord, len(recordModels))
	for i := range recordModels {
		records[i] = mappers.MaintenanceToDomain(&recordModels[i])
	}

	return records, nil
}

func (r *MaintenanceRepository) FindAll(ctx context.Context) ([]*expense.MaintenanceListItem, error) {
	var rows []struct {
		models.MaintenanceModel
		VehicleName  string
		VehiclePlate string
	}

	maintenanceTable := constants.TableMaintenanceRecords
	vehiclesTable := constants.TableVehicles

	if err := db.GetTxFromContext(ctx, r.db).
		Table(maintenanceTable).
		Select(maintenanceTable + ".*, " +
			vehiclesTable + ".name AS vehicle_name, " +
			vehiclesTable + ".license_plate AS vehicle_plate").
		Joins("JOIN " + vehiclesTable + " ON " + vehiclesTable + ".id = " + maintenanceTable + ".vehicle_id").
		Order(maintenanceTable + ".recorded_at DESC, " + maintenanceTable + ".id DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance history: %w", err)
	}

	items := make([]*expense.MaintenanceListItem, len(rows))
	for i := range rows {
		items[i] = &expense.MaintenanceListItem{
			Record:       mappers.MaintenanceToDomain(&rows[i].MaintenanceModel),
			VehicleName:  rows[i].VehicleName,
			LicensePlate: rows[i].VehiclePlate,
		}
	}

	return items, nil
}

func (r *MaintenanceRepository) SumAmounts(ctx context.Context) (float64, error) {
	var total float64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaintenanceModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum maintenance amounts: %w", err)
	}

	return total, nil
}

func (r *MaintenanceRepository) DeleteByVehicleID(ctx context.Context, vehicleID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("vehicle_id = ?", vehicleID).
		Delete(&models.MaintenanceModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete maintenance by vehicle: %w", err)
	}

	return nil
}
