package usecases

import (
	"context"
	"fmt"
	"time"

	"autopark/internal/domain/expense"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type ListCostsQuery struct {
	Category string
}

type CostItem struct {
	RecordID    uint
	Category    string
	Amount      float64
	Description string
	RecordedAt  time.Time
}

type ListCostsResult struct {
	Records     []*CostItem
	Total       int
	TotalAmount float64
}

type ListCostsUseCase struct {
	costRepo expense.CostRepository
	logger   logger.Interface
}

func NewListCostsUseCase(costRepo expense.CostRepository, logger logger.Interface) *ListCostsUseCase {
	return &ListCostsUseCase{
		costRepo: costRepo,
		logger:   logger,
	}
}

func (uc *ListCostsUseCase) Execute(ctx context.Context, query ListCostsQuery) (*ListCostsResult, error) {
	category, err := expense.NewCostCategory(query.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	records, err := uc.costRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost records: %w", err)
	}

	result := &ListCostsResult{Records: make([]*CostItem, 0, len(records))}
	for _, record := range records {
		result.Records = append(result.Records, &CostItem{
			RecordID:    record.ID(),
			Category:    record.Category().String(),
			Amount:      record.Amount(),
			Description: record.Description(),
			RecordedAt:  record.RecordedAt(),
		})
		result.TotalAmount += record.Amount()
	}
	result.Total = len(result.Records)
	return result, nil
}
