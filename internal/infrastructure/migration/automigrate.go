package migration

import (
	"autopark/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.VehicleModel{},
		&models.RentalModel{},
		&models.MaintenanceModel{},
		&models.CostModel{},
	}
}
