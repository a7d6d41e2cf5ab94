package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/fleet"
	vo "autopark/internal/domain/fleet/valueobjects"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type ListVehiclesQuery struct {
	// Status filters by lifecycle status when non-empty.
	Status string
}

type ListVehiclesResult struct {
	Vehicles []*VehicleResult
	Total    int
}

type ListVehiclesUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewListVehiclesUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *ListVehiclesUseCase) Execute(ctx context.Context, query ListVehiclesQuery) (*ListVehiclesResult, error) {
	var (
		vehicles []*fleet.Vehicle
		err      error
	)

	if query.Status != "" {
		status, statusErr := vo.NewStatus(query.Status)
		if statusErr != nil {
			return nil, errors.NewValidationError(statusErr.Error())
		}
		vehicles, err = uc.vehicleRepo.FindByStatus(ctx, status)
	} else {
		vehicles, err = uc.vehicleRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	results := make([]*VehicleResult, 0, len(vehicles))
	for _, v := range vehicles {
		results = append(results, newVehicleResult(v))
	}

	return &ListVehiclesResult{
		Vehicles: results,
		Total:    len(results),
	}, nil
}
