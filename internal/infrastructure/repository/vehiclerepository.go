package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"autopark/internal/domain/fleet"
	vo "autopark/internal/domain/fleet/valueobjects"
	"autopark/internal/infrastructure/persistence/mappers"
	"autopark/internal/infrastructure/persistence/models"
	"autopark/internal/shared/db"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *fleet.Vehicle) error {
	model := mappers.VehicleToModel(v)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	v.SetID(model.ID)

	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *fleet.Vehicle) error {
	model := mappers.VehicleToModel(v)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.VehicleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"status":         model.Status,
			"purchase_price": model.PurchasePrice,
			"purchase_date":  model.PurchaseDate,
			"sale_price":     model.SalePrice,
			"sale_date":      model.SaleDate,
			"total_income":   model.TotalIncome,
			"total_rentals":  model.TotalRentals,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}

	return nil
}

func (r *VehicleRepository) FindByPlate(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	var model models.VehicleModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("license_plate = ?", plate).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vehicle by plate: %w", err)
	}

	return mappers.VehicleToDomain(&model)
}

func (r *VehicleRepository) FindByPlateForUpdate(ctx context.Context, plate string) (*fleet.Vehicle, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// SQLite has no row locks; its write transaction already serializes
	// writers, so the locking clause is only applied on MySQL.
	if strings.EqualFold(tx.Dialector.Name(), "mysql") {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var model models.VehicleModel
	if err := tx.Where("license_plate = ?", plate).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock vehicle by plate: %w", err)
	}

	return mappers.VehicleToDomain(&model)
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uint) (*fleet.Vehicle, error) {
	var model models.VehicleModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle not found")
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return mappers.VehicleToDomain(&model)
}

func (r *VehicleRepository) FindAll(ctx context.Context) ([]*fleet.Vehicle, error) {
	var vehicleModels []models.VehicleModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC, id DESC").
		Find(&vehicleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return toDomainVehicles(vehicleModels)
}

func (r *VehicleRepository) FindByStatus(ctx context.Context, status vo.Status) ([]*fleet.Vehicle, error) {
	var vehicleModels []models.VehicleModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", status.String()).
		Order("created_at DESC, id DESC").
		Find(&vehicleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles by status: %w", err)
	}

	return toDomainVehicles(vehicleModels)
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.VehicleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vehicle not found")
	}

	return nil
}

func (r *VehicleRepository) GetFleetStats(ctx context.Context) (*fleet.FleetStats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := tx.Model(&models.VehicleModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to count vehicles by status: %w", err)
	}

	var totals struct {
		TotalIncome  float64
		TotalRentals int64
	}
	if err := tx.Model(&models.VehicleModel{}).
		Select("COALESCE(SUM(total_income), 0) AS total_income, COALESCE(SUM(total_rentals), 0) AS total_rentals").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum fleet aggregates: %w", err)
	}

	stats := &fleet.FleetStats{
		TotalIncome:  totals.TotalIncome,
		TotalRentals: totals.TotalRentals,
	}
	for _, row := range statusRows {
		stats.Total += row.Count
		switch vo.Status(row.Status) {
		case vo.StatusAvailable:
			stats.Available = row.Count
		case vo.StatusRented:
			stats.Rented = row.Count
		case vo.StatusSold:
			stats.Sold = row.Count
		case vo.StatusMaintenance:
			stats.InMaintenance = row.Count
		}
	}

	return stats, nil
}

func (r *VehicleRepository) SumPurchasePrices(ctx context.Context) (float64, error) {
	var total float64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.VehicleModel{}).
		Select("COALESCE(SUM(purchase_price), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum purchase prices: %w", err)
	}

	return total, nil
}

func (r *VehicleRepository) SumSalePrices(ctx context.Context) (float64, error) {
	var total float64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.VehicleModel{}).
		Select("COALESCE(SUM(sale_price), 0)").
		Where("sale_price IS NOT NULL").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum sale prices: %w", err)
	}

	return total, nil
}

func toDomainVehicles(vehicleModels []models.VehicleModel) ([]*fleet.Vehicle, error) {
	vehicles := make([]*fleet.Vehicle, len(vehicleModels))
	for i := range vehicleModels {
		v, err := mappers.VehicleToDomain(&vehicleModels[i])
		if err != nil {
			return nil, err
		}
		vehicles[i] = v
	}
	return vehicles, nil
}
