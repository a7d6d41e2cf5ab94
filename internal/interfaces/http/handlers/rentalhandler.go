// Package handlers contains the gin HTTP handlers. Handlers translate JSON
// requests into use case commands and map results and failures back onto the
// shared response envelope.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"autopark/internal/application/rental/usecases"
	"autopark/internal/shared/logger"
	"autopark/internal/shared/utils"
)

type IngestRentalRequest struct {
	Message string `json:"message" binding:"required"`
}

type IngestRentalResponse struct {
	RentalID       uint      `json:"rental_id"`
	LicensePlate   string    `json:"license_plate"`
	Transport      string    `json:"transport"`
	Price          float64   `json:"price"`
	VehicleCreated bool      `json:"vehicle_created"`
	TotalIncome    float64   `json:"total_income"`
	TotalRentals   int       `json:"total_rentals"`
	CreatedAt      time.Time `json:"created_at"`
}

type RentalResponse struct {
	ID            uint      `json:"id"`
	Server        string    `json:"server"`
	CharacterName string    `json:"character_name"`
	Transport     string    `json:"transport"`
	LicensePlate  string    `json:"license_plate"`
	Price         float64   `json:"price"`
	Duration      string    `json:"duration"`
	Renter        string    `json:"renter"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListRentalsResponse struct {
	Rentals     []RentalResponse `json:"rentals"`
	Total       int64            `json:"total"`
	TotalIncome float64          `json:"total_income"`
}

type RentalHandler struct {
	ingestUC usecases.IngestNotificationExecutor
	listUC   usecases.ListRentalsExecutor
	logger   logger.Interface
}

func NewRentalHandler(
	ingestUC usecases.IngestNotificationExecutor,
	listUC usecases.ListRentalsExecutor,
) *RentalHandler {
	return &RentalHandler{
		ingestUC: ingestUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

// IngestRental handles POST /rentals/ingest
func (h *RentalHandler) IngestRental(c *gin.Context) {
	var req IngestRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for rental ingest", "error", err)
		utils.ErrorResponse(c, 400, "message is required")
		return
	}

	result, err := h.ingestUC.Execute(c.Request.Context(), usecases.IngestNotificationCommand{
		Text: req.Message,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, IngestRentalResponse{
		RentalID:       result.RentalID,
		LicensePlate:   result.LicensePlate,
		Transport:      result.Transport,
		Price:          result.Price,
		VehicleCreated: result.VehicleCreated,
		TotalIncome:    result.TotalIncome,
		TotalRentals:   result.TotalRentals,
		CreatedAt:      result.CreatedAt,
	}, "Rental recorded successfully")
}

// ListRentals handles GET /rentals
func (h *RentalHandler) ListRentals(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRentalsQuery{
		LicensePlate: c.Query("plate"),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	response := ListRentalsResponse{
		Rentals:     make([]RentalResponse, 0, len(result.Rentals)),
		Total:       result.Total,
		TotalIncome: result.TotalIncome,
	}
	for _, r := range result.Rentals {
		response.Rentals = append(response.Rentals, RentalResponse{
			ID:            r.ID(),
			Server:        r.Server(),
			CharacterName: r.CharacterName(),
			Transport:     r.Transport(),
			LicensePlate:  r.LicensePlate(),
			Price:         r.Price(),
			Duration:      r.Duration(),
			Renter:        r.Renter(),
			CreatedAt:     r.CreatedAt(),
		})
	}

	utils.OKResponse(c, response)
}
