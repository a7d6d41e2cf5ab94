package expense

import (
	"fmt"
	"time"

	"autopark/internal/shared/biztime"
)

// CostCategory separates the two independent operating-cost ledgers.
type CostCategory string

const (
	CostAdvertising CostCategory = "advertising"
	CostMisc        CostCategory = "misc"
)

func NewCostCategory(s string) (CostCategory, error) {
	category := CostCategory(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid cost category: %s", s)
	}
	return category, nil
}

func (c CostCategory) IsValid() bool {
	return c == CostAdvertising || c == CostMisc
}

func (c CostCategory) String() string {
	return string(c)
}

// CostRecord is a business-level operating cost not tied to any vehicle.
type CostRecord struct {
	id          uint
	category    CostCategory
	amount      float64
	description string
	recordedAt  time.Time
	createdAt   time.Time
}

func NewCostRecord(category CostCategory, amount float64, description string) (*CostRecord, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid cost category: %s", category)
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	now := biztime.NowUTC()
	return &CostRecord{
		category:    category,
		amount:      amount,
		description: description,
		recordedAt:  now,
		createdAt:   now,
	}, nil
}

// SetID assigns the persistence identifier after insert.
func (c *CostRecord) SetID(id uint) {
	c.id = id
}

func (c *CostRecord) ID() uint               { return c.id }
func (c *CostRecord) Category() CostCategory { return c.category }
func (c *CostRecord) Amount() float64        { return c.amount }
func (c *CostRecord) Description() string    { return c.description }
func (c *CostRecord) RecordedAt() time.Time  { return c.recordedAt }
func (c *CostRecord) CreatedAt() time.Time   { return c.createdAt }

// ReconstructCostRecord rebuilds a record from persisted state.
func ReconstructCostRecord(
	id uint,
	category CostCategory,
	amount float64,
	description string,
	recordedAt, createdAt time.Time,
) *CostRecord {
	return &CostRecord{
		id:          id,
		category:    category,
		amount:      amount,
		description: description,
		recordedAt:  recordedAt,
		createdAt:   createdAt,
	}
}
