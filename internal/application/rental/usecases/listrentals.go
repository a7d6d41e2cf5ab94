package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/fleet"
	"autopark/internal/domain/rental"
	"autopark/internal/shared/logger"
)

type ListRentalsQuery struct {
	// LicensePlate filters by plate when non-empty.
	LicensePlate string
}

type ListRentalsResult struct {
	Rentals     []*rental.Rental
	Total       int64
	TotalIncome float64
}

type ListRentalsUseCase struct {
	rentalRepo rental.RentalRepository
	logger     logger.Interface
}

func NewListRentalsUseCase(rentalRepo rental.RentalRepository, logger logger.Interface) *ListRentalsUseCase {
	return &ListRentalsUseCase{
		rentalRepo: rentalRepo,
		logger:     logger,
	}
}

func (uc *ListRentalsUseCase) Execute(ctx context.Context, query ListRentalsQuery) (*ListRentalsResult, error) {
	if query.LicensePlate != "" {
		plate := fleet.NormalizePlate(query.LicensePlate)
		rentals, err := uc.rentalRepo.FindByPlate(ctx, plate)
		if err != nil {
			return nil, fmt.Errorf("failed to list rentals by plate: %w", err)
		}

		var income float64
		for _, r := range rentals {
			income += r.Price()
		}
		return &ListRentalsResult{
			Rentals:     rentals,
			Total:       int64(len(rentals)),
			TotalIncome: income,
		}, nil
	}

	rentals, err := uc.rentalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}

	total, err := uc.rentalRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count rentals: %w", err)
	}

	income, err := uc.rentalRepo.SumPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum rental prices: %w", err)
	}

	return &ListRentalsResult{
		Rentals:     rentals,
		Total:       total,
		TotalIncome: income,
	}, nil
}
