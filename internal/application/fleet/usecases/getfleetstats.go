package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/fleet"
	"autopark/internal/shared/logger"
)

type GetFleetStatsResult struct {
	Total         int64
	Available     int64
	Rented        int64
	Sold          int64
	InMaintenance int64
	TotalIncome   float64
	TotalRentals  int64
}

type GetFleetStatsUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewGetFleetStatsUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *GetFleetStatsUseCase {
	return &GetFleetStatsUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *GetFleetStatsUseCase) Execute(ctx context.Context) (*GetFleetStatsResult, error) {
	stats, err := uc.vehicleRepo.GetFleetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fleet stats: %w", err)
	}

	return &GetFleetStatsResult{
		Total:         stats.Total,
		Available:     stats.Available,
		Rented:        stats.Rented,
		Sold:          stats.Sold,
		InMaintenance: stats.InMaintenance,
		TotalIncome:   stats.TotalIncome,
		TotalRentals:  stats.TotalRentals,
	}, nil
}
