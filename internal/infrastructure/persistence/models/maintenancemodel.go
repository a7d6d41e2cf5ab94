package models

import (
	"time"

	"autopark/internal/shared/constants"
)

// MaintenanceModel persists one maintenance expense. The foreign key to
// vehicles cascades on delete, matching the explicit cascade the fleet
// delete use case performs.
type MaintenanceModel struct {
	ID          uint          `gorm:"primarykey"`
	VehicleID   uint          `gorm:"index;not null"`
	Vehicle     *VehicleModel `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Amount      float64       `gorm:"not null"`
	Description string        `gorm:"not null;size:500"`
	RecordedAt  time.Time
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (MaintenanceModel) TableName() string {
	return constants.TableMaintenanceRecords
}
