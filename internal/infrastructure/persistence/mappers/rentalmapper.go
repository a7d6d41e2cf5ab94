// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"autopark/internal/domain/rental"
	"autopark/internal/infrastructure/persistence/models"
)

func RentalToModel(r *rental.Rental) *models.RentalModel {
	return &models.RentalModel{
		ID:            r.ID(),
		Server:        r.Server(),
		CharacterName: r.CharacterName(),
		Transport:     r.Transport(),
		LicensePlate:  r.LicensePlate(),
		Price:         r.Price(),
		Duration:      r.Duration(),
		Renter:        r.Renter(),
		CreatedAt:     r.CreatedAt(),
	}
}

func RentalToDomain(model *models.RentalModel) *rental.Rental {
	return rental.ReconstructRental(
		model.ID,
		model.Server,
		model.CharacterName,
		model.Transport,
		model.LicensePlate,
		model.Price,
		model.Duration,
		model.Renter,
		model.CreatedAt,
	)
}
