package usecases

import (
	"context"
	"fmt"
	"time"

	"autopark/internal/domain/expense"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type AddCostCommand struct {
	Category    string
	Amount      float64
	Description string
}

type AddCostResult struct {
	RecordID    uint
	Category    string
	Amount      float64
	Description string
	RecordedAt  time.Time
}

// AddCostUseCase appends an operating cost to one of the category ledgers.
type AddCostUseCase struct {
	costRepo expense.CostRepository
	logger   logger.Interface
}

func NewAddCostUseCase(costRepo expense.CostRepository, logger logger.Interface) *AddCostUseCase {
	return &AddCostUseCase{
		costRepo: costRepo,
		logger:   logger,
	}
}

func (uc *AddCostUseCase) Execute(ctx context.Context, cmd AddCostCommand) (*AddCostResult, error) {
	category, err := expense.NewCostCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	record, err := expense.NewCostRecord(category, cmd.Amount, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.costRepo.Create(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist cost record", "category", category.String(), "error", err)
		return nil, fmt.Errorf("failed to save cost record: %w", err)
	}

	uc.logger.Infow("cost recorded",
		"record_id", record.ID(),
		"category", category.String(),
		"amount", cmd.Amount)

	return &AddCostResult{
		RecordID:    record.ID(),
		Category:    record.Category().String(),
		Amount:      record.Amount(),
		Description: record.Description(),
		RecordedAt:  record.RecordedAt(),
	}, nil
}
