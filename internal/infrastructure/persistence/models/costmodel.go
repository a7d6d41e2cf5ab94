package models

import (
	"time"

	"autopark/internal/shared/constants"
)

// CostModel persists one operating cost. The category column separates the
// advertising and miscellaneous ledgers; their totals are independent.
type CostModel struct {
	ID          uint    `gorm:"primarykey"`
	Category    string  `gorm:"index;not null;size:20"`
	Amount      float64 `gorm:"not null"`
	Description string  `gorm:"not null;size:500"`
	RecordedAt  time.Time
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CostModel) TableName() string {
	return constants.TableCostRecords
}
