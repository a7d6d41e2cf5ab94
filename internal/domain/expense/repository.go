package expense

import "context"

// MaintenanceListItem is the read model for maintenance history joined with
// the owning vehicle's display fields.
type MaintenanceListItem struct {
	Record       *MaintenanceRecord
	VehicleName  string
	LicensePlate string
}

type MaintenanceRepository interface {
	Create(ctx context.Context, record *MaintenanceRecord) error
	FindByVehicleID(ctx context.Context, vehicleID uint) ([]*MaintenanceRecord, error)
	// FindAll returns every record joined with vehicle name and plate,
	// most recent first.
	FindAll(ctx context.Context) ([]*MaintenanceListItem, error)
	SumAmounts(ctx context.Context) (float64, error)
	// DeleteByVehicleID removes a vehicle's maintenance history; it runs
	// inside the fleet cascade-delete transaction.
	DeleteByVehicleID(ctx context.Context, vehicleID uint) error
}

type CostRepository interface {
	Create(ctx context.Context, record *CostRecord) error
	// FindByCategory returns records of one category, most recent first.
	FindByCategory(ctx context.Context, category CostCategory) ([]*CostRecord, error)
	SumByCategory(ctx context.Context, category CostCategory) (float64, error)
}
