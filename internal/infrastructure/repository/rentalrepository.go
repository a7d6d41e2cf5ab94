// Package repository contains the GORM implementations of the domain
// repository interfaces.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"autopark/internal/domain/rental"
	"autopark/internal/infrastructure/persistence/mappers"
	"autopark/internal/infrastructure/persistence/models"
	"autopark/internal/shared/db"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) Create(ctx context.Context, rec *rental.Rental) error {
	model := mappers.RentalToModel(rec)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	rec.SetID(model.ID)

	return nil
}

func (r *RentalRepository) FindAll(ctx context.Context) ([]*rental.Rental, error) {
	var rentalModels []models.RentalModel

	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC, id DESC").
		Find(&rentalModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}

	return toDomainRentals(rentalModels), nil
}

func (r *RentalRepository) FindByPlate(ctx context.Context, plate string) ([]*rental.Rental, error) {
	var rentalModels []models.RentalModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("license_plate = ?", plate).
		Order("created_at DESC, id DESC").
		Find(&rentalModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list rentals by plate: %w", err)
	}

	return toDomainRentals(rentalModels), nil
}

func (r *RentalRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RentalModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rentals: %w", err)
	}

	return count, nil
}

func (r *RentalRepository) SumPrices(ctx context.Context) (float64, error) {
	var total float64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RentalModel{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum rental prices: %w", err)
	}

	return total, nil
}

func (r *RentalRepository) StatsByServer(ctx context.Context) ([]rental.GroupStat, error) {
	return r.groupStats(ctx, "server")
}

func (r *RentalRepository) StatsByTransport(ctx context.Context) ([]rental.GroupStat, error) {
	return r.groupStats(ctx, "transport")
}

func (r *RentalRepository) groupStats(ctx context.Context, column string) ([]rental.GroupStat, error) {
	var rows []struct {
		GroupKey string
		Rentals  int64
		Income   float64
	}

	// "key" is reserved in MySQL, so the alias is group_key.
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RentalModel{}).
		Select(column + " AS group_key, COUNT(*) AS rentals, COALESCE(SUM(price), 0) AS income").
		Group(column).
		Order("income DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate rentals by %s: %w", column, err)
	}

	stats := make([]rental.GroupStat, len(rows))
	for i, row := range rows {
		stats[i] = rental.GroupStat{
			Key:     row.GroupKey,
			Rentals: row.Rentals,
			Income:  row.Income,
		}
	}

	return stats, nil
}

func toDomainRentals(rentalModels []models.RentalModel) []*rental.Rental {
	rentals := make([]*rental.Rental, len(rentalModels))
	for i := range rentalModels {
		rentals[i] = mappers.RentalToDomain(&rentalModels[i])
	}
	return rentals
}
