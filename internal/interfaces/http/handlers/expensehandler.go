package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"autopark/internal/application/expense/usecases"
	"autopark/internal/shared/logger"
	"autopark/internal/shared/utils"
)

type AddMaintenanceRequest struct {
	Amount      float64 `json:"amount" binding:"gte=0"`
	Description string  `json:"description" binding:"required"`
}

type AddCostRequest struct {
	Category    string  `json:"category" binding:"required" validate:"oneof=advertising misc"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Description string  `json:"description" binding:"required"`
}

type MaintenanceResponse struct {
	ID           uint      `json:"id"`
	VehicleID    uint      `json:"vehicle_id"`
	VehicleName  string    `json:"vehicle_name,omitempty"`
	LicensePlate string    `json:"license_plate"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	RecordedAt   time.Time `json:"recorded_at"`
}

type ListMaintenanceResponse struct {
	Records     []MaintenanceResponse `json:"records"`
	Total       int                   `json:"total"`
	TotalAmount float64               `json:"total_amount"`
}

type CostResponse struct {
	ID          uint      `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type ListCostsResponse struct {
	Records     []CostResponse `json:"records"`
	Total       int            `json:"total"`
	TotalAmount float64        `json:"total_amount"`
}

type ExpenseHandler struct {
	addMaintenanceUC  usecases.AddMaintenanceExecutor
	listMaintenanceUC usecases.ListMaintenanceExecutor
	addCostUC         usecases.AddCostExecutor
	listCostsUC       usecases.ListCostsExecutor
	logger            logger.Interface
}

func NewExpenseHandler(
	addMaintenanceUC usecases.AddMaintenanceExecutor,
	listMaintenanceUC usecases.ListMaintenanceExecutor,
	addCostUC usecases.AddCostExecutor,
	listCostsUC usecases.ListCostsExecutor,
) *ExpenseHandler {
	return &ExpenseHandler{
		addMaintenanceUC:  addMaintenanceUC,
		listMaintenanceUC: listMaintenanceUC,
		addCostUC:         addCostUC,
		listCostsUC:       listCostsUC,
		logger:            logger.NewLogger(),
	}
}

// AddMaintenance handles POST /fleet/:plate/maintenance
func (h *ExpenseHandler) AddMaintenance(c *gin.Context) {
	var req AddMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add maintenance", "error", err)
		utils.ErrorResponse(c, 400, "description is required; amount must be non-negative")
		return
	}

	result, err := h.addMaintenanceUC.Execute(c.Request.Context(), usecases.AddMaintenanceCommand{
		LicensePlate: c.Param("plate"),
		Amount:       req.Amount,
		Description:  req.Description,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, MaintenanceResponse{
		ID:           result.RecordID,
		VehicleID:    result.VehicleID,
		LicensePlate: result.LicensePlate,
		Amount:       result.Amount,
		Description:  result.Description,
		RecordedAt:   result.RecordedAt,
	}, "Maintenance recorded successfully")
}

// ListVehicleMaintenance handles GET /fleet/:plate/maintenance
func (h *ExpenseHandler) ListVehicleMaintenance(c *gin.Context) {
	h.listMaintenance(c, c.Param("plate"))
}

// ListMaintenance handles GET /maintenance
func (h *ExpenseHandler) ListMaintenance(c *gin.Context) {
	h.listMaintenance(c, "")
}

func (h *ExpenseHandler) listMaintenance(c *gin.Context, plate string) {
	result, err := h.listMaintenanceUC.Execute(c.Request.Context(), usecases.ListMaintenanceQuery{
		LicensePlate: plate,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	response := ListMaintenanceResponse{
		Records:     make([]MaintenanceResponse, 0, len(result.Records)),
		Total:       result.Total,
		TotalAmount: result.TotalAmount,
	}
	for _, record := range result.Records {
		response.Records = append(response.Records, MaintenanceResponse{
			ID:           record.RecordID,
			VehicleID:    record.VehicleID,
			VehicleName:  record.VehicleName,
			LicensePlate: record.LicensePlate,
			Amount:       record.Amount,
			Description:  record.Description,
			RecordedAt:   record.RecordedAt,
		})
	}

	utils.OKResponse(c, response)
}

// AddCost handles POST /costs
func (h *ExpenseHandler) AddCost(c *gin.Context) {
	var req AddCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add cost", "error", err)
		utils.ErrorResponse(c, 400, "category and description are required; amount must be non-negative")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result, err := h.addCostUC.Execute(c.Request.Context(), usecases.AddCostCommand{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, CostResponse{
		ID:          result.RecordID,
		Category:    result.Category,
		Amount:      result.Amount,
		Description: result.Description,
		RecordedAt:  result.RecordedAt,
	}, "Cost recorded successfully")
}

// ListCosts handles GET /costs?category=
func (h *ExpenseHandler) ListCosts(c *gin.Context) {
	result, err := h.listCostsUC.Execute(c.Request.Context(), usecases.ListCostsQuery{
		Category: c.Query("category"),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	response := ListCostsResponse{
		Records:     make([]CostResponse, 0, len(result.Records)),
		Total:       result.Total,
		TotalAmount: result.TotalAmount,
	}
	for _, record := range result.Records {
		response.Records = append(response.Records, CostResponse{
			ID:          record.RecordID,
			Category:    record.Category,
			Amount:      record.Amount,
			Description: record.Description,
			RecordedAt:  record.RecordedAt,
		})
	}

	utils.OKResponse(c, response)
}
