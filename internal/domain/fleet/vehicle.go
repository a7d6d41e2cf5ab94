package fleet

import (
	"fmt"
	"time"

	vo "autopark/internal/domain/fleet/valueobjects"
	"autopark/internal/shared/biztime"
)

// Vehicle is a single tracked vehicle identified by its license plate.
// TotalIncome and TotalRentals are running aggregates maintained by the
// rental reconciliation: for vehicles created through ingestion they always
// equal the sum/count of rentals recorded against the plate.
type Vehicle struct {
	id            uint
	licensePlate  string
	name          string
	status        vo.Status
	purchasePrice float64
	purchaseDate  time.Time
	salePrice     *float64
	saleDate      *time.Time
	totalIncome   float64
	totalRentals  int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewVehicle creates a vehicle registered by an administrator.
// Aggregates start at zero; an unknown purchase price is recorded as 0.
func NewVehicle(name, licensePlate string, purchasePrice float64) (*Vehicle, error) {
	if name == "" {
		return nil, fmt.Errorf("vehicle name is required")
	}
	if err := ValidatePlate(licensePlate); err != nil {
		return nil, err
	}
	if purchasePrice < 0 {
		return nil, fmt.Errorf("purchase price cannot be negative")
	}

	now := biztime.NowUTC()
	return &Vehicle{
		licensePlate:  NormalizePlate(licensePlate),
		name:          name,
		status:        vo.StatusAvailable,
		purchasePrice: purchasePrice,
		purchaseDate:  now,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewDiscoveredVehicle creates a vehicle the ingestion engine first saw in an
// incoming rental. The acquisition price is deliberately left at 0: the
// engine never guesses a real price for auto-discovered vehicles.
func NewDiscoveredVehicle(name, licensePlate string) (*Vehicle, error) {
	if name == "" {
		name = NormalizePlate(licensePlate)
	}
	return NewVehicle(name, licensePlate, 0)
}

// RecordRental applies one reconciled rental to the running aggregates and
// marks the vehicle as rented.
func (v *Vehicle) RecordRental(price float64) error {
	if price < 0 {
		return fmt.Errorf("rental price cannot be negative")
	}

	v.totalIncome += price
	v.totalRentals++
	v.status = vo.StatusRented
	v.updatedAt = biztime.NowUTC()

	return nil
}

// MarkSold records the sale: status, sale price and sale date change together.
func (v *Vehicle) MarkSold(salePrice float64) error {
	if salePrice < 0 {
		return fmt.Errorf("sale price cannot be negative")
	}
	if v.status == vo.StatusSold {
		return fmt.Errorf("vehicle %s is already sold", v.licensePlate)
	}

	now := biztime.NowUTC()
	v.status = vo.StatusSold
	v.salePrice = &salePrice
	v.saleDate = &now
	v.updatedAt = now

	return nil
}

// ChangeStatus moves the vehicle to another lifecycle status.
func (v *Vehicle) ChangeStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid vehicle status: %s", status)
	}

	v.status = status
	v.updatedAt = biztime.NowUTC()

	return nil
}

// Rename updates the display name.
func (v *Vehicle) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("vehicle name is required")
	}

	v.name = name
	v.updatedAt = biztime.NowUTC()

	return nil
}

// SetPurchasePrice corrects the acquisition price.
func (v *Vehicle) SetPurchasePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("purchase price cannot be negative")
	}

	v.purchasePrice = price
	v.updatedAt = biztime.NowUTC()

	return nil
}

// SetID assigns the persistence identifier after insert.
func (v *Vehicle) SetID(id uint) {
	v.id = id
}

func (v *Vehicle) ID() uint                 { return v.id }
func (v *Vehicle) LicensePlate() string     { return v.licensePlate }
func (v *Vehicle) Name() string             { return v.name }
func (v *Vehicle) Status() vo.Status        { return v.status }
func (v *Vehicle) PurchasePrice() float64   { return v.purchasePrice }
func (v *Vehicle) PurchaseDate() time.Time  { return v.purchaseDate }
func (v *Vehicle) SalePrice() *float64      { return v.salePrice }
func (v *Vehicle) SaleDate() *time.Time     { return v.saleDate }
func (v *Vehicle) TotalIncome() float64     { return v.totalIncome }
func (v *Vehicle) TotalRentals() int        { return v.totalRentals }
func (v *Vehicle) CreatedAt() time.Time     { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time     { return v.updatedAt }

// ReconstructVehicle rebuilds a vehicle from persisted state.
func ReconstructVehicle(
	id uint,
	licensePlate, name string,
	status vo.Status,
	purchasePrice float64,
	purchaseDate time.Time,
	salePrice *float64,
	saleDate *time.Time,
	totalIncome float64,
	totalRentals int,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:            id,
		licensePlate:  licensePlate,
		name:          name,
		status:        status,
		purchasePrice: purchasePrice,
		purchaseDate:  purchaseDate,
		salePrice:     salePrice,
		saleDate:      saleDate,
		totalIncome:   totalIncome,
		totalRentals:  totalRentals,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}
