package usecases

import (
	"time"

	"autopark/internal/domain/fleet"
)

// VehicleResult is the read model shared by the vehicle query and mutation
// use cases.
type VehicleResult struct {
	VehicleID     uint
	LicensePlate  string
	Name          string
	Status        string
	PurchasePrice float64
	PurchaseDate  time.Time
	SalePrice     *float64
	SaleDate      *time.Time
	TotalIncome   float64
	TotalRentals  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func newVehicleResult(v *fleet.Vehicle) *VehicleResult {
	return &VehicleResult{
		VehicleID:     v.ID(),
		LicensePlate:  v.LicensePlate(),
		Name:          v.Name(),
		Status:        v.Status().String(),
		PurchasePrice: v.PurchasePrice(),
		PurchaseDate:  v.PurchaseDate(),
		SalePrice:     v.SalePrice(),
		SaleDate:      v.SaleDate(),
		TotalIncome:   v.TotalIncome(),
		TotalRentals:  v.TotalRentals(),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
}
