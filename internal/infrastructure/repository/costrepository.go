package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"autopark/internal/domain/expense"
	"autopark/internal/infrastructure/persistence/mappers"
	"autopark/internal/infrastructure/persistence/models"
	"autopark/internal/shared/db"
)

type CostRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{db: db}
}

func (r *CostRepository) Create(ctx context.Context, record *expense.CostRecord) error {
	model := mappers.CostToModel(record)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cost record: %w", err)
	}

	record.SetID(model.ID)

	return nil
}

func (r *CostRepository) FindByCategory(ctx context.Context, category expense.CostCategory) ([]*expense.CostRecord, error) {
	var costModels []models.CostModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("category = ?", category.String()).
		Order("recorded_at DESC, id DESC").
		Find(&costModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list costs by category: %w", err)
	}

	records := make([]*expense.CostRecord, len(costModels))
	for i := range costModels {
		record, err := mappers.CostToDomain(&costModels[i])
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	return records, nil
}

func (r *CostRepository) SumByCategory(ctx context.Context, category expense.CostCategory) (float64, error) {
	var total float64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CostModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("category = ?", category.String()).
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum costs by category: %w", err)
	}

	return total, nil
}
