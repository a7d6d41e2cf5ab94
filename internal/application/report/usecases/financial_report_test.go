package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopark/internal/domain/expense"
	"autopark/internal/domain/fleet"
	"autopark/internal/domain/rental"
	"autopark/internal/shared/logger"
)

type stubRentalRepo struct {
	rental.RentalRepository
	sum         float64
	byServer    []rental.GroupStat
	byTransport []rental.GroupStat
}

func (s *stubRentalRepo) SumPrices(ctx context.Context) (float64, error) { return s.sum, nil }
func (s *stubRentalRepo) StatsByServer(ctx context.Context) ([]rental.GroupStat, error) {
	return s.byServer, nil
}
func (s *stubRentalRepo) StatsByTransport(ctx context.Context) ([]rental.GroupStat, error) {
	return s.byTransport, nil
}

type stubVehicleRepo struct {
	fleet.VehicleRepository
	purchaseSum float64
	saleSum     float64
	stats       fleet.FleetStats
}

func (s *stubVehicleRepo) SumPurchasePrices(ctx context.Context) (float64, error) {
	return s.purchaseSum, nil
}
func (s *stubVehicleRepo) SumSalePrices(ctx context.Context) (float64, error) {
	return s.saleSum, nil
}
func (s *stubVehicleRepo) GetFleetStats(ctx context.Context) (*fleet.FleetStats, error) {
	stats := s.stats
	return &stats, nil
}

type stubMaintenanceRepo struct {
	expense.MaintenanceRepository
	sum float64
}

func (s *stubMaintenanceRepo) SumAmounts(ctx context.Context) (float64, error) { return s.sum, nil }

type stubCostRepo struct {
	expense.CostRepository
	advertising float64
	misc        float64
}

func (s *stubCostRepo) SumByCategory(ctx context.Context, category expense.CostCategory) (float64, error) {
	if category == expense.CostAdvertising {
		return s.advertising, nil
	}
	return s.misc, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestFinancialReport_ComputesAllTotals(t *testing.T) {
	uc := NewFinancialReportUseCase(
		&stubRentalRepo{
			sum: 10000,
			byServer: []rental.GroupStat{
				{Key: "Rodina RP", Rentals: 8, Income: 8000},
				{Key: "RedCounty", Rentals: 2, Income: 2000},
			},
			byTransport: []rental.GroupStat{
				{Key: "BMW M5", Rentals: 10, Income: 10000},
			},
		},
		&stubVehicleRepo{
			purchaseSum: 3000,
			saleSum:     2000,
			stats:       fleet.FleetStats{Total: 5, Rented: 2, Available: 1, Sold: 2, TotalRentals: 10},
		},
		&stubMaintenanceRepo{sum: 500},
		&stubCostRepo{advertising: 300, misc: 200},
		noopLogger{},
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10000.0, result.TotalRentalIncome)
	assert.Equal(t, 2000.0, result.TotalSalesIncome)
	assert.Equal(t, 12000.0, result.TotalIncome)
	assert.Equal(t, 3000.0, result.TotalCarAcquisitionCost)
	assert.Equal(t, 500.0, result.TotalMaintenanceCost)
	assert.Equal(t, 300.0, result.TotalAdvertisingCost)
	assert.Equal(t, 200.0, result.TotalMiscCost)
	assert.Equal(t, 4000.0, result.TotalExpenses)
	assert.Equal(t, 8000.0, result.NetProfit)

	assert.InDelta(t, 8000.0/12000.0*100, result.ProfitabilityPercent, 1e-9)
	assert.InDelta(t, 4000.0/12000.0*100, result.ExpenseToIncomePercent, 1e-9)
	assert.InDelta(t, 75.0, result.AcquisitionSharePercent, 1e-9)
	assert.InDelta(t, 12.5, result.MaintenanceSharePercent, 1e-9)
	assert.InDelta(t, 7.5, result.AdvertisingSharePercent, 1e-9)
	assert.InDelta(t, 5.0, result.MiscSharePercent, 1e-9)

	assert.Equal(t, int64(10), result.TotalRentals)
	assert.Equal(t, int64(5), result.FleetTotal)
	assert.Equal(t, int64(2), result.FleetSold)

	require.Len(t, result.ByServer, 2)
	assert.Equal(t, "Rodina RP", result.ByServer[0].Key)
	assert.Equal(t, 1000.0, result.ByServer[0].AverageIncome)
	assert.Equal(t, 1000.0, result.ByServer[1].AverageIncome)

	require.Len(t, result.ByTransport, 1)
	assert.Equal(t, 1000.0, result.ByTransport[0].AverageIncome)
}

func TestFinancialReport_ZeroDenominators(t *testing.T) {
	// Empty store: every ratio is 0, never NaN or an error.
	uc := NewFinancialReportUseCase(
		&stubRentalRepo{},
		&stubVehicleRepo{},
		&stubMaintenanceRepo{},
		&stubCostRepo{},
		noopLogger{},
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.TotalIncome)
	assert.Zero(t, result.TotalExpenses)
	assert.Zero(t, result.NetProfit)
	assert.Zero(t, result.ProfitabilityPercent)
	assert.Zero(t, result.ExpenseToIncomePercent)
	assert.Zero(t, result.AcquisitionSharePercent)
	assert.Zero(t, result.MaintenanceSharePercent)
	assert.Zero(t, result.AdvertisingSharePercent)
	assert.Zero(t, result.MiscSharePercent)
	assert.Empty(t, result.ByServer)
	assert.Empty(t, result.ByTransport)
}

func TestFinancialReport_NegativeNetProfit(t *testing.T) {
	uc := NewFinancialReportUseCase(
		&stubRentalRepo{sum: 100},
		&stubVehicleRepo{purchaseSum: 500},
		&stubMaintenanceRepo{},
		&stubCostRepo{},
		noopLogger{},
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, -400.0, result.NetProfit)
	assert.InDelta(t, -400.0, result.NetProfit, 1e-9)
	assert.InDelta(t, -400.0/100.0*100, result.ProfitabilityPercent, 1e-9)
}
