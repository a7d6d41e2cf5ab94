// Package constants defines application-wide constant values.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database table names
const (
	TableRentals            = "rentals"
	TableVehicles           = "vehicles"
	TableMaintenanceRecords = "maintenance_records"
	TableCostRecords        = "cost_records"
)

// DefaultMigrationScriptsPath is the location of versioned SQL migrations.
const DefaultMigrationScriptsPath = "./internal/infrastructure/migration/scripts"
