package mappers

import (
	"fmt"

	"autopark/internal/domain/fleet"
	vo "autopark/internal/domain/fleet/valueobjects"
	"autopark/internal/infrastructure/persistence/models"
)

func VehicleToModel(v *fleet.Vehicle) *models.VehicleModel {
	return &models.VehicleModel{
		ID:            v.ID(),
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

func VehicleToDomain(model *models.VehicleModel) (*fleet.Vehicle, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle status in storage: %w", err)
	}

	return fleet.ReconstructVehicle(
		model.ID,
		model.LicensePlate,
		model.Name,
		status,
		model.PurchasePrice,
		model.PurchaseDate,
		model.SalePrice,
		model.SaleDate,
		model.TotalIncome,
		model.TotalRentals,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
