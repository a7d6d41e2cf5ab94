package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"autopark/internal/domain/fleet"
	"autopark/internal/domain/rental"
	"autopark/internal/shared/errors"
	"autopark/internal/shared/logger"
)

type IngestNotificationCommand struct {
	Text string
}

type IngestNotificationResult struct {
	RentalID       uint
	LicensePlate   string
	Transport      string
	Price          float64
	VehicleCreated bool
	TotalIncome    float64
	TotalRentals   int
	CreatedAt      time.Time
}

// IngestNotificationUseCase reconciles one incoming rental notification
// against the fleet registry: parse, match or create the vehicle, apply the
// aggregates and append the rental, all in a single transaction.
type IngestNotificationUseCase struct {
	rentalRepo  rental.RentalRepository
	vehicleRepo fleet.VehicleRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewIngestNotificationUseCase(
	rentalRepo rental.RentalRepository,
	vehicleRepo fleet.VehicleRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *IngestNotificationUseCase {
	return &IngestNotificationUseCase{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *IngestNotificationUseCase) Execute(ctx context.Context, cmd IngestNotificationCommand) (*IngestNotificationResult, error) {
	parsed, err := rental.ParseNotification(cmd.Text)
	if err != nil {
		if stderrors.Is(err, rental.ErrNoRentalData) {
			// Not a system fault: the message simply is not a rental.
			uc.logger.Debugw("message rejected by parser", "text_length", len(cmd.Text))
			return nil, errors.NewValidationError("no rental data found in message")
		}
		return nil, fmt.Errorf("failed to parse notification: %w", err)
	}

	plate := fleet.NormalizePlate(parsed.LicensePlate)
	uc.logger.Infow("reconciling rental notification",
		"license_plate", plate,
		"transport", parsed.Transport,
		"price", parsed.Price)

	var result *IngestNotificationResult

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		vehicle, err := uc.vehicleRepo.FindByPlateForUpdate(txCtx, plate)
		if err != nil {
			return fmt.Errorf("failed to look up vehicle: %w", err)
		}

		created := false
		if vehicle == nil {
			vehicle, err = fleet.NewDiscoveredVehicle(parsed.Transport, plate)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.vehicleRepo.Create(txCtx, vehicle); err != nil {
				return fmt.Errorf("failed to register discovered vehicle: %w", err)
			}
			created = true
		}

		if err := vehicle.RecordRental(parsed.Price); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.vehicleRepo.Update(txCtx, vehicle); err != nil {
			return fmt.Errorf("failed to update vehicle aggregates: %w", err)
		}

		newRental, err := rental.NewRental(
			parsed.Server,
			parsed.CharacterName,
			parsed.Transport,
			plate,
			parsed.Price,
			parsed.Duration,
			parsed.Renter,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.rentalRepo.Create(txCtx, newRental); err != nil {
			return fmt.Errorf("failed to append rental: %w", err)
		}

		result = &IngestNotificationResult{
			RentalID:       newRental.ID(),
			LicensePlate:   plate,
			Transport:      parsed.Transport,
			Price:          parsed.Price,
			VehicleCreated: created,
			TotalIncome:    vehicle.TotalIncome(),
			TotalRentals:   vehicle.TotalRentals(),
			CreatedAt:      newRental.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("rental reconciliation failed", "license_plate", plate, "error", err)
		return nil, err
	}

	uc.logger.Infow("rental reconciled",
		"rental_id", result.RentalID,
		"license_plate", plate,
		"vehicle_created", result.VehicleCreated,
		"total_income", result.TotalIncome,
		"total_rentals", result.TotalRentals)

	return result, nil
}
