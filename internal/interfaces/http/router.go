// Package http wires the repositories, use cases and handlers into the gin
// engine that serves the administrative API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	expenseusecases "autopark/internal/application/expense/usecases"
	fleetusecases "autopark/internal/application/fleet/usecases"
	rentalusecases "autopark/internal/application/rental/usecases"
	reportusecases "autopark/internal/application/report/usecases"
	"autopark/internal/infrastructure/config"
	"autopark/internal/infrastructure/repository"
	"autopark/internal/interfaces/http/handlers"
	"autopark/internal/interfaces/http/middleware"
	"autopark/internal/shared/constants"
	"autopark/internal/shared/db"
	"autopark/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	rentalHandler  *handlers.RentalHandler
	fleetHandler   *handlers.FleetHandler
	expenseHandler *handlers.ExpenseHandler
	reportHandler  *handlers.ReportHandler
}

// NewRouter builds the router and the whole dependency graph under it.
func NewRouter(database *gorm.DB, cfg *config.Config) *Router {
	log := logger.NewLogger()

	rentalRepo := repository.NewRentalRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	costRepo := repository.NewCostRepository(database)
	txManager := db.NewTransactionManager(database)

	ingestUC := rentalusecases.NewIngestNotificationUseCase(rentalRepo, vehicleRepo, txManager, log.With("usecase", "ingest_notification"))
	listRentalsUC := rentalusecases.NewListRentalsUseCase(rentalRepo, log.With("usecase", "list_rentals"))

	registerUC := fleetusecases.NewRegisterVehicleUseCase(vehicleRepo, log.With("usecase", "register_vehicle"))
	updateUC := fleetusecases.NewUpdateVehicleUseCase(vehicleRepo, log.With("usecase", "update_vehicle"))
	changeStatusUC := fleetusecases.NewChangeVehicleStatusUseCase(vehicleRepo, log.With("usecase", "change_vehicle_status"))
	sellUC := fleetusecases.NewSellVehicleUseCase(vehicleRepo, log.With("usecase", "sell_vehicle"))
	deleteUC := fleetusecases.NewDeleteVehicleUseCase(vehicleRepo, maintenanceRepo, txManager, log.With("usecase", "delete_vehicle"))
	getVehicleUC := fleetusecases.NewGetVehicleUseCase(vehicleRepo, log.With("usecase", "get_vehicle"))
	listVehiclesUC := fleetusecases.NewListVehiclesUseCase(vehicleRepo, log.With("usecase", "list_vehicles"))
	fleetStatsUC := fleetusecases.NewGetFleetStatsUseCase(vehicleRepo, log.With("usecase", "get_fleet_stats"))

	addMaintenanceUC := expenseusecases.NewAddMaintenanceUseCase(maintenanceRepo, vehicleRepo, log.With("usecase", "add_maintenance"))
	listMaintenanceUC := expenseusecases.NewListMaintenanceUseCase(maintenanceRepo, vehicleRepo, log.With("usecase", "list_maintenance"))
	addCostUC := expenseusecases.NewAddCostUseCase(costRepo, log.With("usecase", "add_cost"))
	listCostsUC := expenseusecases.NewListCostsUseCase(costRepo, log.With("usecase", "list_costs"))

	reportUC := reportusecases.NewFinancialReportUseCase(
		rentalRepo, vehicleRepo, maintenanceRepo, costRepo,
		log.With("usecase", "financial_report"),
	)

	router := &Router{
		rentalHandler:  handlers.NewRentalHandler(ingestUC, listRentalsUC),
		fleetHandler:   handlers.NewFleetHandler(registerUC, updateUC, changeStatusUC, sellUC, deleteUC, getVehicleUC, listVehiclesUC, fleetStatsUC),
		expenseHandler: handlers.NewExpenseHandler(addMaintenanceUC, listMaintenanceUC, addCostUC, listCostsUC),
		reportHandler:  handlers.NewReportHandler(reportUC),
	}
	router.setupEngine(cfg, log)
	return router
}

func (r *Router) setupEngine(cfg *config.Config, log logger.Interface) {
	switch cfg.Server.Mode {
	case constants.EnvProduction, gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case constants.EnvTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	{
		rentals := v1.Group("/rentals")
		{
			rentals.POST("/ingest", r.rentalHandler.IngestRental)
			rentals.GET("", r.rentalHandler.ListRentals)
		}

		fleet := v1.Group("/fleet")
		{
			fleet.GET("", r.fleetHandler.ListVehicles)
			fleet.POST("", r.fleetHandler.RegisterVehicle)
			fleet.GET("/stats", r.fleetHandler.GetFleetStats)
			fleet.GET("/:plate", r.fleetHandler.GetVehicle)
			fleet.PATCH("/:plate", r.fleetHandler.UpdateVehicle)
			fleet.DELETE("/:plate", r.fleetHandler.DeleteVehicle)
			fleet.POST("/:plate/status", r.fleetHandler.ChangeStatus)
			fleet.POST("/:plate/sell", r.fleetHandler.SellVehicle)
			fleet.GET("/:plate/maintenance", r.expenseHandler.ListVehicleMaintenance)
			fleet.POST("/:plate/maintenance", r.expenseHandler.AddMaintenance)
		}

		v1.GET("/maintenance", r.expenseHandler.ListMaintenance)

		costs := v1.Group("/costs")
		{
			costs.GET("", r.expenseHandler.ListCosts)
			costs.POST("", r.expenseHandler.AddCost)
		}

		v1.GET("/reports/financial", r.reportHandler.GetFinancialReport)
	}

	r.engine = engine
}

// Engine returns the configured gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
