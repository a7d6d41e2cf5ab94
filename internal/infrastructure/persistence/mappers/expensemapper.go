package mappers

import (
	"fmt"

	"autopark/internal/domain/expense"
	"autopark/internal/infrastructure/persistence/models"
)

func MaintenanceToModel(m *expense.MaintenanceRecord) *models.MaintenanceModel {
	return &models.MaintenanceModel{
		ID:          m.ID(),
		VehicleID:   m.VehicleID(),
		Amount:      m.Amount(),
		Description: m.Description(),
		RecordedAt:  m.RecordedAt(),
		CreatedAt:   m.CreatedAt(),
	}
}

func MaintenanceToDomain(model *models.MaintenanceModel) *expense.MaintenanceRecord {
	return expense.ReconstructMaintenanceRecord(
		model.ID,
		model.VehicleID,
		model.Amount,
		model.Description,
		model.RecordedAt,
		model.CreatedAt,
	)
}

func CostToModel(c *expense.CostRecord) *models.CostModel {
	return &models.CostModel{
		ID:          c.ID(),
		Category:    c.Category().String(),
		Amount:      c.Amount(),
		Description: c.Description(),
		RecordedAt:  c.RecordedAt(),
		CreatedAt:   c.CreatedAt(),
	}
}

func CostToDomain(model *models.CostModel) (*expense.CostRecord, error) {
	category, err := expense.NewCostCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid cost category in storage: %w", err)
	}

	return expense.ReconstructCostRecord(
		model.ID,
		category,
		model.Amount,
		model.Description,
		model.RecordedAt,
		model.CreatedAt,
	), nil
}
