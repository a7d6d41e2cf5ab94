package fleet

import (
	"context"

	vo "autopark/internal/domain/fleet/valueobjects"
)

// FleetStats is the aggregate view of the whole registry.
type FleetStats struct {
	Total         int64
	Available     int64
	Rented        int64
	Sold          int64
	InMaintenance int64
	TotalIncome   float64
	TotalRentals  int64
}

type VehicleRepository interface {
	// Create inserts a new vehicle. The license plate is unique; inserting a
	// duplicate fails.
	Create(ctx context.Context, vehicle *Vehicle) error
	Update(ctx context.Context, vehicle *Vehicle) error
	// FindByPlate returns (nil, nil) when no vehicle has the plate.
	FindByPlate(ctx context.Context, plate string) (*Vehicle, error)
	// FindByPlateForUpdate behaves like FindByPlate but locks the row for the
	// duration of the surrounding transaction.
	FindByPlateForUpdate(ctx context.Context, plate string) (*Vehicle, error)
	FindByID(ctx context.Context, id uint) (*Vehicle, error)
	FindAll(ctx context.Context) ([]*Vehicle, error)
	FindByStatus(ctx context.Context, status vo.Status) ([]*Vehicle, error)
	Delete(ctx context.Context, id uint) error
	GetFleetStats(ctx context.Context) (*FleetStats, error)
	SumPurchasePrices(ctx context.Context) (float64, error)
	// SumSalePrices sums sale prices over sold vehicles only.
	SumSalePrices(ctx context.Context) (float64, error)
}
