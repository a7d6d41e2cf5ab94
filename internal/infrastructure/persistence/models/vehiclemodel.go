package models

import (
	"time"

	"gorm.io/gorm"

	vo "autopark/internal/domain/fleet/valueobjects"
	"autopark/internal/shared/constants"
)

// VehicleModel persists one fleet vehicle. The license plate is the natural
// key; it is stored uppercase and enforced unique.
type VehicleModel struct {
	ID            uint       `gorm:"primarykey"`
	LicensePlate  string     `gorm:"uniqueIndex;not null;size:32"`
	Name          string     `gorm:"not null;size:100"`
	Status        string     `gorm:"not null;size:20;default:available"`
	PurchasePrice float64    `gorm:"not null;default:0"`
	PurchaseDate  time.Time
	SalePrice     *float64
	SaleDate      *time.Time
	TotalIncome   float64 `gorm:"not null;default:0"`
	TotalRentals  int     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (VehicleModel) TableName() string {
	return constants.TableVehicles
}

// BeforeCreate hook for GORM
func (v *VehicleModel) BeforeCreate(tx *gorm.DB) error {
	if v.Status == "" {
		v.Status = vo.StatusAvailable.String()
	}
	return nil
}
