package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"autopark/internal/application/report/usecases"
	"autopark/internal/shared/utils"
)

type GroupBreakdownResponse struct {
	Key           string  `json:"key"`
	Rentals       int64   `json:"rentals"`
	Income        float64 `json:"income"`
	AverageIncome float64 `json:"average_income"`
}

type FinancialReportResponse struct {
	TotalRentalIncome       float64 `json:"total_rental_income"`
	TotalSalesIncome        float64 `json:"total_sales_income"`
	TotalIncome             float64 `json:"total_income"`
	TotalCarAcquisitionCost float64 `json:"total_car_acquisition_cost"`
	TotalMaintenanceCost    float64 `json:"total_maintenance_cost"`
	TotalAdvertisingCost    float64 `json:"total_advertising_cost"`
	TotalMiscCost           float64 `json:"total_misc_cost"`
	TotalExpenses           float64 `json:"total_expenses"`
	NetProfit               float64 `json:"net_profit"`
	ProfitabilityPercent    float64 `json:"profitability_percent"`
	ExpenseToIncomePercent  float64 `json:"expense_to_income_ratio_percent"`

	AcquisitionSharePercent float64 `json:"acquisition_share_percent"`
	MaintenanceSharePercent float64 `json:"maintenance_share_percent"`
	AdvertisingSharePercent float64 `json:"advertising_share_percent"`
	MiscSharePercent        float64 `json:"misc_share_percent"`

	TotalRentals   int64 `json:"total_rentals"`
	FleetTotal     int64 `json:"fleet_total"`
	FleetSold      int64 `json:"fleet_sold"`
	FleetRented    int64 `json:"fleet_rented"`
	FleetAvailable int64 `json:"fleet_available"`

	ByServer    []GroupBreakdownResponse `json:"by_server"`
	ByTransport []GroupBreakdownResponse `json:"by_transport"`
}

type FinancialReportExecutor interface {
	Execute(ctx context.Context) (*usecases.FinancialReportResult, error)
}

type ReportHandler struct {
	reportUC FinancialReportExecutor
}

func NewReportHandler(reportUC FinancialReportExecutor) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// GetFinancialReport handles GET /reports/financial
func (h *ReportHandler) GetFinancialReport(c *gin.Context) {
	result, err := h.reportUC.Execute(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, FinancialReportResponse{
		TotalRentalIncome:       result.TotalRentalIncome,
		TotalSalesIncome:        result.TotalSalesIncome,
		TotalIncome:             result.TotalIncome,
		TotalCarAcquisitionCost: result.TotalCarAcquisitionCost,
		TotalMaintenanceCost:    result.TotalMaintenanceCost,
		TotalAdvertisingCost:    result.TotalAdvertisingCost,
		TotalMiscCost:           result.TotalMiscCost,
		TotalExpenses:           result.TotalExpenses,
		NetProfit:               result.NetProfit,
		ProfitabilityPercent:    result.ProfitabilityPercent,
		ExpenseToIncomePercent:  result.ExpenseToIncomePercent,
		AcquisitionSharePercent: result.AcquisitionSharePercent,
		MaintenanceSharePercent: result.MaintenanceSharePercent,
		AdvertisingSharePercent: result.AdvertisingSharePercent,
		MiscSharePercent:        result.MiscSharePercent,
		TotalRentals:            result.TotalRentals,
		FleetTotal:              result.FleetTotal,
		FleetSold:               result.FleetSold,
		FleetRented:             result.FleetRented,
		FleetAvailable:          result.FleetAvailable,
		ByServer:                groupBreakdowns(result.ByServer),
		ByTransport:             groupBreakdowns(result.ByTransport),
	})
}

func groupBreakdowns(rows []usecases.GroupBreakdown) []GroupBreakdownResponse {
	out := make([]GroupBreakdownResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, GroupBreakdownResponse{
			Key:           row.Key,
			Rentals:       row.Rentals,
			Income:        row.Income,
			AverageIncome: row.AverageIncome,
		})
	}
	return out
}
