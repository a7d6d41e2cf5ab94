package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autopark/internal/application/fleet/usecases"
	"autopark/internal/shared/logger"
	"autopark/internal/shared/utils"
)

type RegisterVehicleRequest struct {
	Name          string  `json:"name" binding:"required"`
	LicensePlate  string  `json:"license_plate" binding:"required"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
}

type UpdateVehicleRequest struct {
	Name          *string  `json:"name"`
	PurchasePrice *float64 `json:"purchase_price"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SellVehicleRequest struct {
	SalePrice float64 `json:"sale_price" binding:"gte=0"`
}

type VehicleResponse struct {
	ID            uint       `json:"id"`
	LicensePlate  string     `json:"license_plate"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	PurchasePrice float64    `json:"purchase_price"`
	PurchaseDate  time.Time  `json:"purchase_date"`
	SalePrice     *float64   `json:"sale_price,omitempty"`
	SaleDate      *time.Time `json:"sale_date,omitempty"`
	TotalIncome   float64    `json:"total_income"`
	TotalRentals  int        `json:"total_rentals"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
}

type FleetStatsResponse struct {
	Total         int64   `json:"total"`
	Available     int64   `json:"available"`
	Rented        int64   `json:"rented"`
	Sold          int64   `json:"sold"`
	InMaintenance int64   `json:"in_maintenance"`
	TotalIncome   float64 `json:"total_income"`
	TotalRentals  int64   `json:"total_rentals"`
}

type FleetHandler struct {
	registerUC     usecases.RegisterVehicleExecutor
	updateUC       usecases.UpdateVehicleExecutor
	changeStatusUC usecases.ChangeVehicleStatusExecutor
	sellUC         usecases.SellVehicleExecutor
	deleteUC       usecases.DeleteVehicleExecutor
	getUC          usecases.GetVehicleExecutor
	listUC         usecases.ListVehiclesExecutor
	statsUC        usecases.GetFleetStatsExecutor
	logger         logger.Interface
}

func NewFleetHandler(
	registerUC usecases.RegisterVehicleExecutor,
	updateUC usecases.UpdateVehicleExecutor,
	changeStatusUC usecases.ChangeVehicleStatusExecutor,
	sellUC usecases.SellVehicleExecutor,
	deleteUC usecases.DeleteVehicleExecutor,
	getUC usecases.GetVehicleExecutor,
	listUC usecases.ListVehiclesExecutor,
	statsUC usecases.GetFleetStatsExecutor,
) *FleetHandler {
	return &FleetHandler{
		registerUC:     registerUC,
		updateUC:       updateUC,
		changeStatusUC: changeStatusUC,
		sellUC:         sellUC,
		deleteUC:       deleteUC,
		getUC:          getUC,
		listUC:         listUC,
		statsUC:        statsUC,
		logger:         logger.NewLogger(),
	}
}

// RegisterVehicle handles POST /fleet
func (h *FleetHandler) RegisterVehicle(c *gin.Context) {
	var req RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register vehicle", "error", err)
		utils.ErrorResponse(c, 400, "name and license_plate are required; purchase_price must be non-negative")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterVehicleCommand{
		Name:          req.Name,
		LicensePlate:  req.LicensePlate,
		PurchasePrice: req.PurchasePrice,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":             result.VehicleID,
		"license_plate":  result.LicensePlate,
		"name":           result.Name,
		"status":         result.Status,
		"purchase_price": result.PurchasePrice,
		"created_at":     result.CreatedAt,
	}, "Vehicle registered successfully")
}

// GetVehicle handles GET /fleet/:plate
func (h *FleetHandler) GetVehicle(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetVehicleQuery{
		LicensePlate: c.Param("plate"),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, vehicleResponse(result))
}

// ListVehicles handles GET /fleet
func (h *FleetHandler) ListVehicles(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListVehiclesQuery{
		Status: c.Query("status"),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	response := ListVehiclesResponse{
		Vehicles: make([]VehicleResponse, 0, len(result.Vehicles)),
		Total:    result.Total,
	}
	for _, v := range result.Vehicles {
		response.Vehicles = append(response.Vehicles, vehicleResponse(v))
	}

	utils.OKResponse(c, response)
}

// UpdateVehicle handles PATCH /fleet/:plate
func (h *FleetHandler) UpdateVehicle(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateVehicleCommand{
		LicensePlate:  c.Param("plate"),
		Name:          req.Name,
		PurchasePrice: req.PurchasePrice,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", vehicleResponse(result))
}

// ChangeStatus handles POST /fleet/:plate/status
func (h *FleetHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "status is required")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeVehicleStatusCommand{
		LicensePlate: c.Param("plate"),
		Status:       req.Status,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle status changed successfully", vehicleResponse(result))
}

// SellVehicle handles POST /fleet/:plate/sell
func (h *FleetHandler) SellVehicle(c *gin.Context) {
	var req SellVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "sale_price must be non-negative")
		return
	}

	result, err := h.sellUC.Execute(c.Request.Context(), usecases.SellVehicleCommand{
		LicensePlate: c.Param("plate"),
		SalePrice:    req.SalePrice,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle sold successfully", vehicleResponse(result))
}

// DeleteVehicle handles DELETE /fleet/:plate
func (h *FleetHandler) DeleteVehicle(c *gin.Context) {
	err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteVehicleCommand{
		LicensePlate: c.Param("plate"),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted successfully", nil)
}

// GetFleetStats handles GET /fleet/stats
func (h *FleetHandler) GetFleetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, FleetStatsResponse{
		Total:         result.Total,
		Available:     result.Available,
		Rented:        result.Rented,
		Sold:          result.Sold,
		InMaintenance: result.InMaintenance,
		TotalIncome:   result.TotalIncome,
		TotalRentals:  result.TotalRentals,
	})
}

func vehicleResponse(v *usecases.VehicleResult) VehicleResponse {
	return VehicleResponse{
		ID:            v.VehicleID,
		LicensePlate:  v.LicensePlate,
		Name:          v.Name,
		Status:        v.Status,
		PurchasePrice: v.PurchasePrice,
		PurchaseDate:  v.PurchaseDate,
		SalePrice:     v.SalePrice,
		SaleDate:      v.SaleDate,
		TotalIncome:   v.TotalIncome,
		TotalRentals:  v.TotalRentals,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
