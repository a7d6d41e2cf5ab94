// Package models contains the GORM persistence models. They form the
// anti-corruption layer between the domain entities and the database schema.
package models

import (
	"time"

	"autopark/internal/shared/constants"
)

// RentalModel persists one rental transaction. Rows are append-only.
type RentalModel struct {
	ID            uint    `gorm:"primarykey"`
	Server        string  `gorm:"not null;size:100"`
	CharacterName string  `gorm:"not null;size:100"`
	Transport     string  `gorm:"not null;size:100"`
	LicensePlate  string  `gorm:"index;not null;size:32"`
	Price         float64 `gorm:"not null"`
	Duration      string  `gorm:"not null;size:100"`
	Renter        string  `gorm:"not null;size:100"`
	CreatedAt     time.Time
}

// TableName specifies the table name for GORM
func (RentalModel) TableName() string {
	return constants.TableRentals
}
