// Package usecases holds the read-side reporting use cases. The financial
// report recomputes everything from the ledgers on each call; nothing is
// cached.
package usecases

import (
	"context"
	"fmt"

	"autopark/internal/domain/expense"
	"autopark/internal/domain/fleet"
	"autopark/internal/domain/rental"
	"autopark/internal/shared/logger"
)

// GroupBreakdown is one row of an income breakdown grouped by server or by
// transport label, ordered by income descending.
type GroupBreakdown struct {
	Key           string
	Rentals       int64
	Income        float64
	AverageIncome float64
}

type FinancialReportResult struct {
	TotalRentalIncome       float64
	TotalSalesIncome        float64
	TotalIncome             float64
	TotalCarAcquisitionCost float64
	TotalMaintenanceCost    float64
	TotalAdvertisingCost    float64
	TotalMiscCost           float64
	TotalExpenses           float64
	NetProfit               float64
	ProfitabilityPercent    float64
	ExpenseToIncomePercent  float64

	AcquisitionSharePercent float64
	MaintenanceSharePercent float64
	AdvertisingSharePercent float64
	MiscSharePercent        float64

	TotalRentals   int64
	FleetTotal     int64
	FleetSold      int64
	FleetRented    int64
	FleetAvailable int64

	ByServer    []GroupBreakdown
	ByTransport []GroupBreakdown
}

// FinancialReportUseCase aggregates the income and expense ledgers into the
// business report. Fleet aggregates are trusted as already consistent with
// the rental log; they are not recomputed here.
type FinancialReportUseCase struct {
	rentalRepo      rental.RentalRepository
	vehicleRepo     fleet.VehicleRepository
	maintenanceRepo expense.MaintenanceRepository
	costRepo        expense.CostRepository
	logger          logger.Interface
}

func NewFinancialReportUseCase(
	rentalRepo rental.RentalRepository,
	vehicleRepo fleet.VehicleRepository,
	maintenanceRepo expense.MaintenanceRepository,
	costRepo expense.CostRepository,
	logger logger.Interface,
) *FinancialReportUseCase {
	return &FinancialReportUseCase{
		rentalRepo:      rentalRepo,
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		costRepo:        costRepo,
		logger:          logger,
	}
}

func (uc *FinancialReportUseCase) Execute(ctx context.Context) (*FinancialReportResult, error) {
	rentalIncome, err := uc.rentalRepo.SumPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum rental income: %w", err)
	}

	salesIncome, err := uc.vehicleRepo.SumSalePrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales income: %w", err)
	}

	// Includes ingestion-discovered vehicles whose acquisition price is 0.
	acquisitionCost, err := uc.vehicleRepo.SumPurchasePrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum acquisition cost: %w", err)
	}

	maintenanceCost, err := uc.maintenanceRepo.SumAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum maintenance cost: %w", err)
	}

	advertisingCost, err := uc.costRepo.SumByCategory(ctx, expense.CostAdvertising)
	if err != nil {
		return nil, fmt.Errorf("failed to sum advertising cost: %w", err)
	}

	miscCost, err := uc.costRepo.SumByCategory(ctx, expense.CostMisc)
	if err != nil {
		return nil, fmt.Errorf("failed to sum misc cost: %w", err)
	}

	fleetStats, err := uc.vehicleRepo.GetFleetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fleet stats: %w", err)
	}

	byServer, err := uc.groupBreakdown(uc.rentalRepo.StatsByServer(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to compute server breakdown: %w", err)
	}

	byTransport, err := uc.groupBreakdown(uc.rentalRepo.StatsByTransport(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to compute transport breakdown: %w", err)
	}

	totalIncome := rentalIncome + salesIncome
	totalExpenses := maintenanceCost + advertisingCost + miscCost + acquisitionCost
	netProfit := totalIncome - totalExpenses

	result := &FinancialReportResult{
		TotalRentalIncome:       rentalIncome,
		TotalSalesIncome:        salesIncome,
		TotalIncome:             totalIncome,
		TotalCarAcquisitionCost: acquisitionCost,
		TotalMaintenanceCost:    maintenanceCost,
		TotalAdvertisingCost:    advertisingCost,
		TotalMiscCost:           miscCost,
		TotalExpenses:           totalExpenses,
		NetProfit:               netProfit,
		ProfitabilityPercent:    percentOf(netProfit, totalIncome),
		ExpenseToIncomePercent:  percentOf(totalExpenses, totalIncome),
		AcquisitionSharePercent: percentOf(acquisitionCost, totalExpenses),
		MaintenanceSharePercent: percentOf(maintenanceCost, totalExpenses),
		AdvertisingSharePercent: percentOf(advertisingCost, totalExpenses),
		MiscSharePercent:        percentOf(miscCost, totalExpenses),
		TotalRentals:            fleetStats.TotalRentals,
		FleetTotal:              fleetStats.Total,
		FleetSold:               fleetStats.Sold,
		FleetRented:             fleetStats.Rented,
		FleetAvailable:          fleetStats.Available,
		ByServer:                byServer,
		ByTransport:             byTransport,
	}

	uc.logger.Debugw("financial report computed",
		"total_income", totalIncome,
		"total_expenses", totalExpenses,
		"net_profit", netProfit)

	return result, nil
}

func (uc *FinancialReportUseCase) groupBreakdown(stats []rental.GroupStat, err error) ([]GroupBreakdown, error) {
	if err != nil {
		return nil, err
	}

	breakdown := make([]GroupBreakdown, 0, len(stats))
	for _, stat := range stats {
		row := GroupBreakdown{
			Key:     stat.Key,
			Rentals: stat.Rentals,
			Income:  stat.Income,
		}
		if stat.Rentals > 0 {
			row.AverageIncome = stat.Income / float64(stat.Rentals)
		}
		breakdown = append(breakdown, row)
	}
	return breakdown, nil
}

// percentOf returns value/total*100, or 0 when the denominator is 0. A zero
// denominator is a policy result, never an error or NaN.
func percentOf(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
