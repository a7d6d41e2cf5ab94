// Package expense holds the cost-side entities: per-vehicle maintenance
// records and business-level operating costs.
package expense

import (
	"fmt"
	"time"

	"autopark/internal/shared/biztime"
)

// MaintenanceRecord is one maintenance expense tied to a fleet vehicle.
// Records are removed together with their vehicle (cascade delete).
type MaintenanceRecord struct {
	id          uint
	vehicleID   uint
	amount      float64
	description string
	recordedAt  time.Time
	createdAt   time.Time
}

func NewMaintenanceRecord(vehicleID uint, amount float64, description string) (*MaintenanceRecord, error) {
	if vehicleID == 0 {
		return nil, fmt.Errorf("vehicle ID is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	now := biztime.NowUTC()
	return &MaintenanceRecord{
		vehicleID:   vehicleID,
		amount:      amount,
		description: description,
		recordedAt:  now,
		createdAt:   now,
	}, nil
}

// SetID assigns the persistence identifier after insert.
func (m *MaintenanceRecord) SetID(id uint) {
	m.id = id
}

func (m *MaintenanceRecord) ID() uint             { return m.id }
func (m *MaintenanceRecord) VehicleID() uint      { return m.vehicleID }
func (m *MaintenanceRecord) Amount() float64      { return m.amount }
func (m *MaintenanceRecord) Description() string  { return m.description }
func (m *MaintenanceRecord) RecordedAt() time.Time { return m.recordedAt }
func (m *MaintenanceRecord) CreatedAt() time.Time  { return m.createdAt }

// ReconstructMaintenanceRecord rebuilds a record from persisted state.
func ReconstructMaintenanceRecord(
	id, vehicleID uint,
	amount float64,
	description string,
	recordedAt, createdAt time.Time,
) *MaintenanceRecord {
	return &MaintenanceRecord{
		id:          id,
		vehicleID:   vehicleID,
		amount:      amount,
		description: description,
		recordedAt:  recordedAt,
		createdAt:   createdAt,
	}
}
